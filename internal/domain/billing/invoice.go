package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes master invoices from the child invoices issued
// under them. Both kinds draw their numbers from the same counter sequence;
// only prefix and format configuration differ.
type InvoiceKind string

const (
	InvoiceKindMaster InvoiceKind = "MASTER"
	InvoiceKindChild  InvoiceKind = "CHILD"
)

// String returns the string representation of InvoiceKind
func (k InvoiceKind) String() string {
	return string(k)
}

// IsValid checks if the kind is a valid InvoiceKind
func (k InvoiceKind) IsValid() bool {
	return k == InvoiceKindMaster || k == InvoiceKindChild
}

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusIssued InvoiceStatus = "ISSUED"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusVoided InvoiceStatus = "VOIDED"
)

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoided:
		return true
	}
	return false
}

// Invoice is a billing document issued to a customer. A child invoice
// references its master through ParentID.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string
	Kind          InvoiceKind
	ParentID      *uuid.UUID
	SalesOrderID  *uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	TotalAmount   decimal.Decimal
	Status        InvoiceStatus
	IssuedAt      *time.Time
}

// NewMasterInvoice creates a new draft master invoice
func NewMasterInvoice(invoiceNumber string, customerID uuid.UUID, customerName string) (*Invoice, error) {
	return newInvoice(invoiceNumber, InvoiceKindMaster, nil, customerID, customerName)
}

// NewChildInvoice creates a new draft child invoice under a master
func NewChildInvoice(invoiceNumber string, parentID, customerID uuid.UUID, customerName string) (*Invoice, error) {
	if parentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARENT_INVOICE", "Parent invoice ID cannot be empty")
	}
	return newInvoice(invoiceNumber, InvoiceKindChild, &parentID, customerID, customerName)
}

func newInvoice(invoiceNumber string, kind InvoiceKind, parentID *uuid.UUID, customerID uuid.UUID, customerName string) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		Kind:              kind,
		ParentID:          parentID,
		CustomerID:        customerID,
		CustomerName:      customerName,
		TotalAmount:       decimal.Zero,
		Status:            InvoiceStatusDraft,
	}, nil
}

// Issue marks the invoice as issued
func (i *Invoice) Issue() error {
	if i.Status != InvoiceStatusDraft {
		return shared.ErrInvalidState
	}
	now := time.Now()
	i.Status = InvoiceStatusIssued
	i.IssuedAt = &now
	i.UpdatedAt = now
	return nil
}

// MarkPaid marks the invoice as paid
func (i *Invoice) MarkPaid() error {
	if i.Status != InvoiceStatusIssued {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()
	return nil
}

// Void cancels the invoice
func (i *Invoice) Void() error {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusVoided {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusVoided
	i.UpdatedAt = time.Now()
	return nil
}

// SetTotalAmount updates the invoice total
func (i *Invoice) SetTotalAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	i.TotalAmount = amount
	i.UpdatedAt = time.Now()
	return nil
}
