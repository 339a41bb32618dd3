package persistence

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/infrastructure/persistence/models"
)

// incrementCounterSQL atomically inserts the counter row at 1 or bumps it
// by one, in a single statement. Counter values are kept in the settings
// table so they share storage with the numbering prefixes and formats.
const incrementCounterSQL = `
INSERT INTO settings (key, value, created_at, updated_at)
VALUES (?, '1', NOW(), NOW())
ON CONFLICT (key)
DO UPDATE SET value = (settings.value::bigint + 1)::text, updated_at = NOW()
RETURNING value`

// GormCounterStore implements numbering.CounterStore on the settings table.
// Increment is a single insert-or-increment statement so concurrent callers
// can never observe the same value twice.
type GormCounterStore struct {
	db *gorm.DB
}

// NewGormCounterStore creates a new GormCounterStore
func NewGormCounterStore(db *gorm.DB) *GormCounterStore {
	return &GormCounterStore{db: db}
}

// Increment atomically increments the counter for namespace/year and
// returns the new value. The first increment of a fresh counter returns 1.
func (s *GormCounterStore) Increment(ctx context.Context, namespace string, year int) (int64, error) {
	key := numbering.CounterKey(namespace, year)

	var raw string
	if err := s.db.WithContext(ctx).Raw(incrementCounterSQL, key).Scan(&raw).Error; err != nil {
		return 0, fmt.Errorf("incrementing counter %s: %w", key, err)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s holds non-numeric value %q: %w", key, raw, numbering.ErrCounterCorrupt)
	}
	return value, nil
}

// Set forces the counter for namespace/year to the given value
func (s *GormCounterStore) Set(ctx context.Context, namespace string, year int, value int64) error {
	key := numbering.CounterKey(namespace, year)
	return s.db.WithContext(ctx).
		Exec(`INSERT INTO settings (key, value, created_at, updated_at)
VALUES (?, ?, NOW(), NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
			key, strconv.FormatInt(value, 10)).Error
}

// Reset removes the counter for namespace/year so the next increment yields 1
func (s *GormCounterStore) Reset(ctx context.Context, namespace string, year int) error {
	key := numbering.CounterKey(namespace, year)
	return s.db.WithContext(ctx).Delete(&models.SettingModel{}, "key = ?", key).Error
}

// Peek returns the current counter value without incrementing it.
// Absent counters read as 0.
func (s *GormCounterStore) Peek(ctx context.Context, namespace string, year int) (int64, error) {
	key := numbering.CounterKey(namespace, year)

	var setting models.SettingModel
	err := s.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}

	value, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s holds non-numeric value %q: %w", key, setting.Value, numbering.ErrCounterCorrupt)
	}
	return value, nil
}

// DeleteNamespace removes every yearly counter belonging to namespace.
// Underscores in the key prefix are escaped so LIKE matches them literally.
func (s *GormCounterStore) DeleteNamespace(ctx context.Context, namespace string) error {
	prefix := escapeLike(namespace + "_counter_")
	result := s.db.WithContext(ctx).
		Where("key LIKE ? ESCAPE '\\'", prefix+"%").
		Delete(&models.SettingModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting counters for namespace %s: %w", namespace, result.Error)
	}
	return nil
}

// escapeLike escapes LIKE metacharacters in a literal prefix
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

var _ numbering.CounterStore = (*GormCounterStore)(nil)
