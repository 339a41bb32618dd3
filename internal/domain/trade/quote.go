package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// String returns the string representation of QuoteStatus
func (s QuoteStatus) String() string {
	return string(s)
}

// Quote is a priced offer sent to a customer. QuoteNumber is assigned once
// at creation and only ever replaced wholesale by a renumbering migration.
type Quote struct {
	shared.BaseAggregateRoot
	QuoteNumber  string
	CustomerID   uuid.UUID
	CustomerName string
	TotalAmount  decimal.Decimal
	Status       QuoteStatus
	ValidUntil   *time.Time
	Remark       string
}

// NewQuote creates a new draft quote
func NewQuote(quoteNumber string, customerID uuid.UUID, customerName string) (*Quote, error) {
	if quoteNumber == "" {
		return nil, shared.NewDomainError("INVALID_QUOTE_NUMBER", "Quote number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Quote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QuoteNumber:       quoteNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		TotalAmount:       decimal.Zero,
		Status:            QuoteStatusDraft,
	}, nil
}

// Send marks the quote as sent to the customer
func (q *Quote) Send() error {
	if q.Status != QuoteStatusDraft {
		return shared.ErrInvalidState
	}
	q.Status = QuoteStatusSent
	q.UpdatedAt = time.Now()
	return nil
}

// Accept marks the quote as accepted by the customer
func (q *Quote) Accept() error {
	if q.Status != QuoteStatusSent {
		return shared.ErrInvalidState
	}
	q.Status = QuoteStatusAccepted
	q.UpdatedAt = time.Now()
	return nil
}

// Reject marks the quote as rejected by the customer
func (q *Quote) Reject() error {
	if q.Status != QuoteStatusSent {
		return shared.ErrInvalidState
	}
	q.Status = QuoteStatusRejected
	q.UpdatedAt = time.Now()
	return nil
}

// SetTotalAmount updates the quoted total
func (q *Quote) SetTotalAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	q.TotalAmount = amount
	q.UpdatedAt = time.Now()
	return nil
}

// SetRemark sets a free-text remark
func (q *Quote) SetRemark(remark string) {
	q.Remark = remark
	q.UpdatedAt = time.Now()
}
