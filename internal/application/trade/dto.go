package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/trade"
)

// ==================== Quote DTOs ====================

// CreateQuoteRequest represents a request to create a quote
type CreateQuoteRequest struct {
	CustomerID   uuid.UUID        `json:"customer_id" binding:"required"`
	CustomerName string           `json:"customer_name" binding:"required,min=1,max=200"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	ValidUntil   *time.Time       `json:"valid_until"`
	Remark       string           `json:"remark"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID             uuid.UUID       `json:"id"`
	QuoteNumber    string          `json:"quote_number"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	Remark         string          `json:"remark,omitempty"`
	NumberFallback bool            `json:"number_fallback,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToQuoteResponse converts a domain quote to a response DTO
func ToQuoteResponse(q *trade.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		TotalAmount:  q.TotalAmount,
		Status:       q.Status.String(),
		ValidUntil:   q.ValidUntil,
		Remark:       q.Remark,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// QuoteListFilter carries list query parameters for quotes
type QuoteListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// ==================== Sales Order DTOs ====================

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	QuoteID      *uuid.UUID       `json:"quote_id"`
	CustomerID   uuid.UUID        `json:"customer_id" binding:"required"`
	CustomerName string           `json:"customer_name" binding:"required,min=1,max=200"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Remark       string           `json:"remark"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	QuoteID        *uuid.UUID      `json:"quote_id,omitempty"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	Remark         string          `json:"remark,omitempty"`
	NumberFallback bool            `json:"number_fallback,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain sales order to a response DTO
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		QuoteID:      o.QuoteID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status.String(),
		Remark:       o.Remark,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
