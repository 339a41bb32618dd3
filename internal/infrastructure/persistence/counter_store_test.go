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

	"github.com/quoteline/backend/internal/domain/numbering"
)

// newMockCounterStore creates a GormCounterStore with a mocked SQL connection
func newMockCounterStore(t *testing.T) (*GormCounterStore, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCounterStore(gormDB), mock, mockDB
}

func TestGormCounterStore_Increment(t *testing.T) {
	t.Run("first increment creates the counter at 1", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO settings .* ON CONFLICT \(key\).* RETURNING value`).
			WithArgs("quote_counter_2025").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		value, err := store.Increment(context.Background(), "quote", 2025)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing counter is bumped by one", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO settings .* RETURNING value`).
			WithArgs("invoice_counter_2025").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("42"))

		value, err := store.Increment(context.Background(), "invoice", 2025)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-numeric stored value is corruption, not a fallback", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO settings .* RETURNING value`).
			WithArgs("quote_counter_2025").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not-a-number"))

		value, err := store.Increment(context.Background(), "quote", 2025)

		assert.Error(t, err)
		assert.ErrorIs(t, err, numbering.ErrCounterCorrupt)
		assert.Zero(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error is returned unchanged", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO settings .* RETURNING value`).
			WithArgs("grn_counter_2025").
			WillReturnError(sql.ErrConnDone)

		_, err := store.Increment(context.Background(), "grn", 2025)

		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterStore_Set(t *testing.T) {
	t.Run("upserts the counter value", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO settings .* ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED.value.*`).
			WithArgs("quote_counter_2025", "100").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Set(context.Background(), "quote", 2025, 100)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterStore_Peek(t *testing.T) {
	t.Run("returns stored value without incrementing", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("quote_counter_2025", "7")

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("quote_counter_2025", 1).
			WillReturnRows(rows)

		value, err := store.Peek(context.Background(), "quote", 2025)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent counter reads as zero", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("vendor_po_counter_2025", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		value, err := store.Peek(context.Background(), "vendor_po", 2025)

		assert.NoError(t, err)
		assert.Zero(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-numeric stored value is corruption", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("quote_counter_2025", "garbage")

		mock.ExpectQuery(`SELECT \* FROM "settings" WHERE key = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("quote_counter_2025", 1).
			WillReturnRows(rows)

		_, err := store.Peek(context.Background(), "quote", 2025)

		assert.ErrorIs(t, err, numbering.ErrCounterCorrupt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterStore_Reset(t *testing.T) {
	t.Run("deletes the yearly counter", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "settings" WHERE key = \$1`).
			WithArgs("quote_counter_2025").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Reset(context.Background(), "quote", 2025)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterStore_DeleteNamespace(t *testing.T) {
	t.Run("deletes counters with escaped LIKE prefix", func(t *testing.T) {
		store, mock, mockDB := newMockCounterStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "settings" WHERE key LIKE \$1 ESCAPE .*`).
			WithArgs(`vendor\_po\_counter\_%`).
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := store.DeleteNamespace(context.Background(), "vendor_po")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `quote\_counter\_`, escapeLike("quote_counter_"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, "plain", escapeLike("plain"))
}
