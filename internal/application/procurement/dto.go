package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/procurement"
)

// CreateVendorPoRequest represents a request to create a vendor purchase order
type CreateVendorPoRequest struct {
	VendorID    uuid.UUID        `json:"vendor_id" binding:"required"`
	VendorName  string           `json:"vendor_name" binding:"required,min=1,max=200"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Remark      string           `json:"remark"`
}

// VendorPoResponse represents a vendor purchase order in API responses
type VendorPoResponse struct {
	ID             uuid.UUID       `json:"id"`
	PoNumber       string          `json:"po_number"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	VendorName     string          `json:"vendor_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	Remark         string          `json:"remark,omitempty"`
	NumberFallback bool            `json:"number_fallback,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToVendorPoResponse converts a domain vendor PO to a response DTO
func ToVendorPoResponse(po *procurement.VendorPurchaseOrder) VendorPoResponse {
	return VendorPoResponse{
		ID:          po.ID,
		PoNumber:    po.PoNumber,
		VendorID:    po.VendorID,
		VendorName:  po.VendorName,
		TotalAmount: po.TotalAmount,
		Status:      po.Status.String(),
		Remark:      po.Remark,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}
}

// CreateGrnRequest represents a request to record a goods-received note
// against a purchase order
type CreateGrnRequest struct {
	ReceivedBy string `json:"received_by" binding:"required,min=1,max=100"`
	Remark     string `json:"remark"`
}

// GrnResponse represents a goods-received note in API responses
type GrnResponse struct {
	ID              uuid.UUID `json:"id"`
	GrnNumber       string    `json:"grn_number"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id"`
	ReceivedAt      time.Time `json:"received_at"`
	ReceivedBy      string    `json:"received_by"`
	Remark          string    `json:"remark,omitempty"`
	NumberFallback  bool      `json:"number_fallback,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToGrnResponse converts a domain GRN to a response DTO
func ToGrnResponse(grn *procurement.GoodsReceivedNote) GrnResponse {
	return GrnResponse{
		ID:              grn.ID,
		GrnNumber:       grn.GrnNumber,
		PurchaseOrderID: grn.PurchaseOrderID,
		ReceivedAt:      grn.ReceivedAt,
		ReceivedBy:      grn.ReceivedBy,
		Remark:          grn.Remark,
		CreatedAt:       grn.CreatedAt,
	}
}
