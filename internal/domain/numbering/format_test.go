package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("renders prefix, year and padded counter", func(t *testing.T) {
		result := Render("{PREFIX}-{YEAR}-{COUNTER:04d}", "QT", 7, 2025)
		assert.Equal(t, "QT-2025-0007", result)
	})

	t.Run("bare counter token defaults to 4-digit padding", func(t *testing.T) {
		result := Render("{PREFIX}-{COUNTER}", "INV", 3, 2025)
		assert.Equal(t, "INV-0003", result)
	})

	t.Run("honors explicit counter width", func(t *testing.T) {
		assert.Equal(t, "PO-000042", Render("PO-{COUNTER:06d}", "PO", 42, 2025))
		assert.Equal(t, "PO-42", Render("PO-{COUNTER:1d}", "PO", 42, 2025))
	})

	t.Run("pads each counter occurrence to its own width", func(t *testing.T) {
		result := Render("{COUNTER:02d}/{COUNTER:06d}/{COUNTER}", "X", 5, 2025)
		assert.Equal(t, "05/000005/0005", result)
	})

	t.Run("replaces all prefix and year occurrences", func(t *testing.T) {
		result := Render("{PREFIX}{YEAR}-{PREFIX}-{YEAR}", "AB", 1, 2030)
		assert.Equal(t, "AB2030-AB-2030", result)
	})

	t.Run("counter wider than padding is not truncated", func(t *testing.T) {
		result := Render("{PREFIX}-{COUNTER:04d}", "QT", 123456, 2025)
		assert.Equal(t, "QT-123456", result)
	})

	t.Run("leaves unrecognized tokens verbatim", func(t *testing.T) {
		result := Render("{PREFIX}-{MONTH}-{COUNTER}", "QT", 1, 2025)
		assert.Equal(t, "QT-{MONTH}-0001", result)
	})

	t.Run("template without tokens passes through", func(t *testing.T) {
		assert.Equal(t, "static", Render("static", "QT", 9, 2025))
	})

	t.Run("uses the given year, not the system clock", func(t *testing.T) {
		assert.Equal(t, "QT-1999-0001", Render("{PREFIX}-{YEAR}-{COUNTER:04d}", "QT", 1, 1999))
	})
}

func TestValidateFormat(t *testing.T) {
	t.Run("accepts counter tokens of any width", func(t *testing.T) {
		assert.NoError(t, ValidateFormat("{PREFIX}-{YEAR}-{COUNTER:04d}"))
		assert.NoError(t, ValidateFormat("{COUNTER}"))
		assert.NoError(t, ValidateFormat("DOC/{COUNTER:08d}"))
	})

	t.Run("rejects a template without a counter token", func(t *testing.T) {
		err := ValidateFormat("{PREFIX}-{YEAR}")
		assert.Error(t, err)
	})

	t.Run("rejects an empty template", func(t *testing.T) {
		assert.Error(t, ValidateFormat(""))
		assert.Error(t, ValidateFormat("   "))
	})
}
