package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
)

// QuoteRepository defines persistence operations for quotes
type QuoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	FindByQuoteNumber(ctx context.Context, quoteNumber string) (*Quote, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Quote, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, quote *Quote) error
	SaveWithLock(ctx context.Context, quote *Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesOrderRepository defines persistence operations for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *SalesOrder) error
	SaveWithLock(ctx context.Context, order *SalesOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}
