package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a sales order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// SalesOrder is a confirmed customer order, typically created from an
// accepted quote.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string
	QuoteID      *uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	Remark       string
}

// NewSalesOrder creates a new draft sales order
func NewSalesOrder(orderNumber string, customerID uuid.UUID, customerName string) (*SalesOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		TotalAmount:       decimal.Zero,
		Status:            OrderStatusDraft,
	}, nil
}

// LinkQuote records the quote this order originated from
func (o *SalesOrder) LinkQuote(quoteID uuid.UUID) {
	o.QuoteID = &quoteID
	o.UpdatedAt = time.Now()
}

// Confirm transitions the order from draft to confirmed
func (o *SalesOrder) Confirm() error {
	if o.Status != OrderStatusDraft {
		return shared.ErrInvalidState
	}
	o.Status = OrderStatusConfirmed
	o.UpdatedAt = time.Now()
	return nil
}

// SetTotalAmount updates the order total
func (o *SalesOrder) SetTotalAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}
	o.TotalAmount = amount
	o.UpdatedAt = time.Now()
	return nil
}
