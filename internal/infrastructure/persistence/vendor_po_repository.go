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

// GormVendorPoRepository implements procurement.VendorPurchaseOrderRepository
// using GORM. It also serves as the vendor PO document source for renumbering.
type GormVendorPoRepository struct {
	db *gorm.DB
}

// NewGormVendorPoRepository creates a new GormVendorPoRepository
func NewGormVendorPoRepository(db *gorm.DB) *GormVendorPoRepository {
	return &GormVendorPoRepository{db: db}
}

// FindByID finds a vendor purchase order by its ID
func (r *GormVendorPoRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.VendorPurchaseOrder, error) {
	var model models.VendorPurchaseOrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPoNumber finds a vendor purchase order by its document number
func (r *GormVendorPoRepository) FindByPoNumber(ctx context.Context, poNumber string) (*procurement.VendorPurchaseOrder, error) {
	var model models.VendorPurchaseOrderModel
	if err := r.db.WithContext(ctx).First(&model, "po_number = ?", poNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all vendor purchase orders with filtering
func (r *GormVendorPoRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.VendorPurchaseOrder, error) {
	var poModels []models.VendorPurchaseOrderModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.VendorPurchaseOrderModel{}),
		filter,
		[]string{"po_number", "vendor_name"},
		"created_at DESC",
	)

	if err := query.Find(&poModels).Error; err != nil {
		return nil, err
	}

	pos := make([]procurement.VendorPurchaseOrder, len(poModels))
	for i, model := range poModels {
		pos[i] = *model.ToDomain()
	}
	return pos, nil
}

// Count counts vendor purchase orders matching the filter
func (r *GormVendorPoRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.VendorPurchaseOrderModel{}),
		shared.Filter{Search: filter.Search},
		[]string{"po_number", "vendor_name"},
		"",
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a vendor purchase order
func (r *GormVendorPoRepository) Save(ctx context.Context, po *procurement.VendorPurchaseOrder) error {
	model := models.VendorPurchaseOrderModelFromDomain(po)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking
func (r *GormVendorPoRepository) SaveWithLock(ctx context.Context, po *procurement.VendorPurchaseOrder) error {
	model := models.VendorPurchaseOrderModelFromDomain(po)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", po.ID, po.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a vendor purchase order
func (r *GormVendorPoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VendorPurchaseOrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListAll returns every vendor purchase order as a renumbering document record
func (r *GormVendorPoRepository) ListAll(ctx context.Context) ([]numbering.DocumentRecord, error) {
	var poModels []models.VendorPurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Select("id", "po_number", "created_at").
		Find(&poModels).Error; err != nil {
		return nil, err
	}

	records := make([]numbering.DocumentRecord, len(poModels))
	for i, model := range poModels {
		records[i] = numbering.DocumentRecord{
			ID:        model.ID,
			Number:    model.PoNumber,
			CreatedAt: model.CreatedAt,
		}
	}
	return records, nil
}

// UpdateNumber rewrites a vendor purchase order's document number
func (r *GormVendorPoRepository) UpdateNumber(ctx context.Context, id uuid.UUID, number string) error {
	result := r.db.WithContext(ctx).
		Model(&models.VendorPurchaseOrderModel{}).
		Where("id = ?", id).
		Update("po_number", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ procurement.VendorPurchaseOrderRepository = (*GormVendorPoRepository)(nil)
	_ numbering.DocumentSource                  = (*GormVendorPoRepository)(nil)
)
