package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
)

// GoodsReceivedNote records goods received against a vendor purchase order
type GoodsReceivedNote struct {
	shared.BaseAggregateRoot
	GrnNumber       string
	PurchaseOrderID uuid.UUID
	ReceivedAt      time.Time
	ReceivedBy      string
	Remark          string
}

// NewGoodsReceivedNote creates a new goods-received note
func NewGoodsReceivedNote(grnNumber string, purchaseOrderID uuid.UUID, receivedBy string) (*GoodsReceivedNote, error) {
	if grnNumber == "" {
		return nil, shared.NewDomainError("INVALID_GRN_NUMBER", "GRN number cannot be empty")
	}
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Purchase order ID cannot be empty")
	}

	return &GoodsReceivedNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		GrnNumber:         grnNumber,
		PurchaseOrderID:   purchaseOrderID,
		ReceivedAt:        time.Now(),
		ReceivedBy:        receivedBy,
	}, nil
}

// SetRemark sets a free-text remark
func (g *GoodsReceivedNote) SetRemark(remark string) {
	g.Remark = remark
	g.UpdatedAt = time.Now()
}
