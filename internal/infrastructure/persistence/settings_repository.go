package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/infrastructure/persistence/models"
)

// GormSettingsRepository implements numbering.SettingsStore using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the value stored under key, or shared.ErrNotFound
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var setting models.SettingModel
	if err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a setting value
func (r *GormSettingsRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	setting := models.SettingModel{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

// Delete removes a setting. Deleting an absent key is not an error.
func (r *GormSettingsRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&models.SettingModel{}, "key = ?", key).Error
}

// GetAll returns every setting as a key/value map
func (r *GormSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var settings []models.SettingModel
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, s := range settings {
		result[s.Key] = s.Value
	}
	return result, nil
}
