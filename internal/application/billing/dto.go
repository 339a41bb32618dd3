package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/billing"
)

// CreateMasterInvoiceRequest represents a request to create a master invoice
type CreateMasterInvoiceRequest struct {
	SalesOrderID *uuid.UUID       `json:"sales_order_id"`
	CustomerID   uuid.UUID        `json:"customer_id" binding:"required"`
	CustomerName string           `json:"customer_name" binding:"required,min=1,max=200"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
}

// CreateChildInvoiceRequest represents a request to create a child invoice
// under an existing master invoice
type CreateChildInvoiceRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID             uuid.UUID       `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Kind           string          `json:"kind"`
	ParentID       *uuid.UUID      `json:"parent_id,omitempty"`
	SalesOrderID   *uuid.UUID      `json:"sales_order_id,omitempty"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	IssuedAt       *time.Time      `json:"issued_at,omitempty"`
	NumberFallback bool            `json:"number_fallback,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Kind:          inv.Kind.String(),
		ParentID:      inv.ParentID,
		SalesOrderID:  inv.SalesOrderID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status.String(),
		IssuedAt:      inv.IssuedAt,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
