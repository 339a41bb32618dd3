package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
)

// VendorPurchaseOrderRepository defines persistence operations for vendor purchase orders
type VendorPurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VendorPurchaseOrder, error)
	FindByPoNumber(ctx context.Context, poNumber string) (*VendorPurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]VendorPurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, po *VendorPurchaseOrder) error
	SaveWithLock(ctx context.Context, po *VendorPurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoodsReceivedNoteRepository defines persistence operations for goods-received notes
type GoodsReceivedNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GoodsReceivedNote, error)
	FindByGrnNumber(ctx context.Context, grnNumber string) (*GoodsReceivedNote, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GoodsReceivedNote, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, grn *GoodsReceivedNote) error
	Delete(ctx context.Context, id uuid.UUID) error
}
