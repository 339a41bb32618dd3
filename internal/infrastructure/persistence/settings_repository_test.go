package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/shared"
)

// newMockSettingsRepository creates a GormSettingsRepository with a mocked SQL connection
func newMockSettingsRepository(t *testing.T) (*GormSettingsRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSettingsRepository(gormDB), mock, mockDB
}

func TestGormSettingsRepository_Get(t *testing.T) {
	t.Run("returns stored value", func(t *testing.T) {
		repo, mock, mockDB := newMockSettingsRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("quotePrefix", "QT")

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("quotePrefix", 1).
			WillReturnRows(rows)

		value, err := repo.Get(context.Background(), "quotePrefix")

		assert.NoError(t, err)
		assert.Equal(t, "QT", value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key maps to ErrNotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockSettingsRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("missing", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSettingsRepository_Set(t *testing.T) {
	t.Run("upserts via ON CONFLICT", func(t *testing.T) {
		repo, mock, mockDB := newMockSettingsRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "settings" .* ON CONFLICT \("key"\) DO UPDATE SET .*`).
			WithArgs("quotePrefix", "QUO", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Set(context.Background(), "quotePrefix", "QUO")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSettingsRepository_Delete(t *testing.T) {
	t.Run("deleting absent key is not an error", func(t *testing.T) {
		repo, mock, mockDB := newMockSettingsRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "settings" WHERE key = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "missing")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSettingsRepository_GetAll(t *testing.T) {
	t.Run("returns all settings as a map", func(t *testing.T) {
		repo, mock, mockDB := newMockSettingsRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("quotePrefix", "QT").
			AddRow("invoicePrefix", "INV")

		mock.ExpectQuery(`SELECT \* FROM "settings"`).
			WillReturnRows(rows)

		settings, err := repo.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"quotePrefix": "QT", "invoicePrefix": "INV"}, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
