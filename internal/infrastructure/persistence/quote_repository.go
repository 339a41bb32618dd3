package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
	"github.com/quoteline/backend/internal/infrastructure/persistence/models"
)

// GormQuoteRepository implements trade.QuoteRepository using GORM.
// It also serves as the quote document source for renumbering.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote by its ID
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByQuoteNumber finds a quote by its document number
func (r *GormQuoteRepository) FindByQuoteNumber(ctx context.Context, quoteNumber string) (*trade.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "quote_number = ?", quoteNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all quotes with filtering
func (r *GormQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quote, error) {
	var quoteModels []models.QuoteModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.QuoteModel{}),
		filter,
		[]string{"quote_number", "customer_name"},
		"created_at DESC",
	)

	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	quotes := make([]trade.Quote, len(quoteModels))
	for i, model := range quoteModels {
		quotes[i] = *model.ToDomain()
	}
	return quotes, nil
}

// Count counts quotes matching the filter
func (r *GormQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.QuoteModel{}),
		shared.Filter{Search: filter.Search},
		[]string{"quote_number", "customer_name"},
		"",
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a quote
func (r *GormQuoteRepository) Save(ctx context.Context, quote *trade.Quote) error {
	model := models.QuoteModelFromDomain(quote)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking
func (r *GormQuoteRepository) SaveWithLock(ctx context.Context, quote *trade.Quote) error {
	model := models.QuoteModelFromDomain(quote)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", quote.ID, quote.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a quote
func (r *GormQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.QuoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListAll returns every quote as a renumbering document record
func (r *GormQuoteRepository) ListAll(ctx context.Context) ([]numbering.DocumentRecord, error) {
	var quoteModels []models.QuoteModel
	if err := r.db.WithContext(ctx).
		Select("id", "quote_number", "created_at").
		Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	records := make([]numbering.DocumentRecord, len(quoteModels))
	for i, model := range quoteModels {
		records[i] = numbering.DocumentRecord{
			ID:        model.ID,
			Number:    model.QuoteNumber,
			CreatedAt: model.CreatedAt,
		}
	}
	return records, nil
}

// UpdateNumber rewrites a quote's document number
func (r *GormQuoteRepository) UpdateNumber(ctx context.Context, id uuid.UUID, number string) error {
	result := r.db.WithContext(ctx).
		Model(&models.QuoteModel{}).
		Where("id = ?", id).
		Update("quote_number", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ trade.QuoteRepository    = (*GormQuoteRepository)(nil)
	_ numbering.DocumentSource = (*GormQuoteRepository)(nil)
)
