package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	t.Run("creates draft quote with number", func(t *testing.T) {
		quote, err := NewQuote("QT-2025-0001", uuid.New(), "Acme Ltd")
		require.NoError(t, err)
		assert.Equal(t, "QT-2025-0001", quote.QuoteNumber)
		assert.Equal(t, QuoteStatusDraft, quote.Status)
		assert.Equal(t, 1, quote.Version)
		assert.True(t, quote.TotalAmount.IsZero())
	})

	t.Run("rejects empty quote number", func(t *testing.T) {
		_, err := NewQuote("", uuid.New(), "Acme Ltd")
		assert.Error(t, err)
	})

	t.Run("rejects nil customer", func(t *testing.T) {
		_, err := NewQuote("QT-2025-0001", uuid.Nil, "Acme Ltd")
		assert.Error(t, err)
	})
}

func TestQuote_StatusTransitions(t *testing.T) {
	newQuote := func(t *testing.T) *Quote {
		quote, err := NewQuote("QT-2025-0001", uuid.New(), "Acme Ltd")
		require.NoError(t, err)
		return quote
	}

	t.Run("draft can be sent, sent can be accepted", func(t *testing.T) {
		quote := newQuote(t)
		require.NoError(t, quote.Send())
		require.NoError(t, quote.Accept())
		assert.Equal(t, QuoteStatusAccepted, quote.Status)
	})

	t.Run("accepting a draft is rejected", func(t *testing.T) {
		quote := newQuote(t)
		assert.ErrorIs(t, quote.Accept(), shared.ErrInvalidState)
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		quote := newQuote(t)
		assert.Error(t, quote.SetTotalAmount(decimal.NewFromInt(-1)))
	})
}
