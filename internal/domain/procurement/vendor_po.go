package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PoStatus represents the status of a vendor purchase order
type PoStatus string

const (
	PoStatusDraft     PoStatus = "DRAFT"
	PoStatusIssued    PoStatus = "ISSUED"
	PoStatusReceived  PoStatus = "RECEIVED"
	PoStatusCancelled PoStatus = "CANCELLED"
)

// String returns the string representation of PoStatus
func (s PoStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid PoStatus
func (s PoStatus) IsValid() bool {
	switch s {
	case PoStatusDraft, PoStatusIssued, PoStatusReceived, PoStatusCancelled:
		return true
	}
	return false
}

// VendorPurchaseOrder is an order placed with a vendor
type VendorPurchaseOrder struct {
	shared.BaseAggregateRoot
	PoNumber    string
	VendorID    uuid.UUID
	VendorName  string
	TotalAmount decimal.Decimal
	Status      PoStatus
	Remark      string
}

// NewVendorPurchaseOrder creates a new draft vendor purchase order
func NewVendorPurchaseOrder(poNumber string, vendorID uuid.UUID, vendorName string) (*VendorPurchaseOrder, error) {
	if poNumber == "" {
		return nil, shared.NewDomainError("INVALID_PO_NUMBER", "PO number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if vendorName == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}

	return &VendorPurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PoNumber:          poNumber,
		VendorID:          vendorID,
		VendorName:        vendorName,
		TotalAmount:       decimal.Zero,
		Status:            PoStatusDraft,
	}, nil
}

// Issue sends the purchase order to the vendor
func (p *VendorPurchaseOrder) Issue() error {
	if p.Status != PoStatusDraft {
		return shared.ErrInvalidState
	}
	p.Status = PoStatusIssued
	p.UpdatedAt = time.Now()
	return nil
}

// MarkReceived records that the ordered goods arrived
func (p *VendorPurchaseOrder) MarkReceived() error {
	if p.Status != PoStatusIssued {
		return shared.ErrInvalidState
	}
	p.Status = PoStatusReceived
	p.UpdatedAt = time.Now()
	return nil
}
