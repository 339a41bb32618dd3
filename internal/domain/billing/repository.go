package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
)

// InvoiceRepository defines persistence operations for invoices of both kinds
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	FindAllByKind(ctx context.Context, kind InvoiceKind, filter shared.Filter) ([]Invoice, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Invoice, error)
	Count(ctx context.Context, kind InvoiceKind, filter shared.Filter) (int64, error)
	Save(ctx context.Context, invoice *Invoice) error
	SaveWithLock(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
