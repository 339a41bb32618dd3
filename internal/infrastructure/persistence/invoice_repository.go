package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/billing"
	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM.
// Master and child invoices share the table; DocumentSource scopes a
// renumbering view to one kind.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoiceNumber finds an invoice by its document number
func (r *GormInvoiceRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "invoice_number = ?", invoiceNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllByKind finds all invoices of one kind with filtering
func (r *GormInvoiceRepository) FindAllByKind(ctx context.Context, kind billing.InvoiceKind, filter shared.Filter) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("kind = ?", kind),
		filter,
		[]string{"invoice_number", "customer_name"},
		"created_at DESC",
	)

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindChildren finds the child invoices of a master invoice
func (r *GormInvoiceRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Count counts invoices of one kind matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, kind billing.InvoiceKind, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("kind = ?", kind),
		shared.Filter{Search: filter.Search},
		[]string{"invoice_number", "customer_name"},
		"",
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", invoice.ID, invoice.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DocumentSource returns a renumbering document source scoped to one
// invoice kind. Master and child invoices migrate as separate passes even
// though they share a table and a counter namespace.
func (r *GormInvoiceRepository) DocumentSource(kind billing.InvoiceKind) numbering.DocumentSource {
	return &invoiceDocumentSource{repo: r, kind: kind}
}

type invoiceDocumentSource struct {
	repo *GormInvoiceRepository
	kind billing.InvoiceKind
}

// ListAll returns every invoice of the scoped kind as a document record
func (s *invoiceDocumentSource) ListAll(ctx context.Context) ([]numbering.DocumentRecord, error) {
	var invoiceModels []models.InvoiceModel
	if err := s.repo.db.WithContext(ctx).
		Select("id", "invoice_number", "created_at").
		Where("kind = ?", s.kind).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	records := make([]numbering.DocumentRecord, len(invoiceModels))
	for i, model := range invoiceModels {
		records[i] = numbering.DocumentRecord{
			ID:        model.ID,
			Number:    model.InvoiceNumber,
			CreatedAt: model.CreatedAt,
		}
	}
	return records, nil
}

// UpdateNumber rewrites an invoice's document number
func (s *invoiceDocumentSource) UpdateNumber(ctx context.Context, id uuid.UUID, number string) error {
	result := s.repo.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("id = ? AND kind = ?", id, s.kind).
		Update("invoice_number", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
	_ numbering.DocumentSource  = (*invoiceDocumentSource)(nil)
)
