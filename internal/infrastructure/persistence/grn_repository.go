package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/procurement"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/infrastructure/persistence/models"
)

// GormGrnRepository implements procurement.GoodsReceivedNoteRepository using
// GORM. It also serves as the GRN document source for renumbering.
type GormGrnRepository struct {
	db *gorm.DB
}

// NewGormGrnRepository creates a new GormGrnRepository
func NewGormGrnRepository(db *gorm.DB) *GormGrnRepository {
	return &GormGrnRepository{db: db}
}

// FindByID finds a goods-received note by its ID
func (r *GormGrnRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.GoodsReceivedNote, error) {
	var model models.GoodsReceivedNoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByGrnNumber finds a goods-received note by its document number
func (r *GormGrnRepository) FindByGrnNumber(ctx context.Context, grnNumber string) (*procurement.GoodsReceivedNote, error) {
	var model models.GoodsReceivedNoteModel
	if err := r.db.WithContext(ctx).First(&model, "grn_number = ?", grnNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all goods-received notes with filtering
func (r *GormGrnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.GoodsReceivedNote, error) {
	var grnModels []models.GoodsReceivedNoteModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.GoodsReceivedNoteModel{}),
		filter,
		[]string{"grn_number", "received_by"},
		"created_at DESC",
	)

	if err := query.Find(&grnModels).Error; err != nil {
		return nil, err
	}

	grns := make([]procurement.GoodsReceivedNote, len(grnModels))
	for i, model := range grnModels {
		grns[i] = *model.ToDomain()
	}
	return grns, nil
}

// Count counts goods-received notes matching the filter
func (r *GormGrnRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.GoodsReceivedNoteModel{}),
		shared.Filter{Search: filter.Search},
		[]string{"grn_number", "received_by"},
		"",
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a goods-received note
func (r *GormGrnRepository) Save(ctx context.Context, grn *procurement.GoodsReceivedNote) error {
	model := models.GoodsReceivedNoteModelFromDomain(grn)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a goods-received note
func (r *GormGrnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GoodsReceivedNoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListAll returns every goods-received note as a renumbering document record
func (r *GormGrnRepository) ListAll(ctx context.Context) ([]numbering.DocumentRecord, error) {
	var grnModels []models.GoodsReceivedNoteModel
	if err := r.db.WithContext(ctx).
		Select("id", "grn_number", "created_at").
		Find(&grnModels).Error; err != nil {
		return nil, err
	}

	records := make([]numbering.DocumentRecord, len(grnModels))
	for i, model := range grnModels {
		records[i] = numbering.DocumentRecord{
			ID:        model.ID,
			Number:    model.GrnNumber,
			CreatedAt: model.CreatedAt,
		}
	}
	return records, nil
}

// UpdateNumber rewrites a goods-received note's document number
func (r *GormGrnRepository) UpdateNumber(ctx context.Context, id uuid.UUID, number string) error {
	result := r.db.WithContext(ctx).
		Model(&models.GoodsReceivedNoteModel{}).
		Where("id = ?", id).
		Update("grn_number", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ procurement.GoodsReceivedNoteRepository = (*GormGrnRepository)(nil)
	_ numbering.DocumentSource                = (*GormGrnRepository)(nil)
)
