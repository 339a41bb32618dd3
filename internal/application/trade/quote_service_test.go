package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
)

func TestQuoteService_Create(t *testing.T) {
	t.Run("creates quote with generated number", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		counters := newStubCounters()
		service := NewQuoteService(repo, newTestGenerator(counters), nil)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Quote")).Return(nil)

		response, err := service.Create(context.Background(), CreateQuoteRequest{
			CustomerID:   uuid.New(),
			CustomerName: "Acme Corp",
		})

		require.NoError(t, err)
		assert.Equal(t, "QT-2025-0001", response.QuoteNumber)
		assert.Equal(t, "DRAFT", response.Status)
		assert.False(t, response.NumberFallback)
		repo.AssertExpectations(t)
	})

	t.Run("numbering failure does not block creation", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		counters := newStubCounters()
		counters.err = errors.New("connection refused")
		service := NewQuoteService(repo, newTestGenerator(counters), nil)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Quote")).Return(nil)

		response, err := service.Create(context.Background(), CreateQuoteRequest{
			CustomerID:   uuid.New(),
			CustomerName: "Acme Corp",
		})

		require.NoError(t, err)
		assert.True(t, response.NumberFallback)
		assert.Regexp(t, `^QT-\d{4}$`, response.QuoteNumber)
		repo.AssertExpectations(t)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := service.Create(context.Background(), CreateQuoteRequest{
			CustomerID:   uuid.New(),
			CustomerName: "Acme Corp",
		})

		assert.Error(t, err)
	})
}

func TestQuoteService_Transitions(t *testing.T) {
	t.Run("send moves draft to sent under lock", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, quote.ID).Return(quote, nil)
		repo.On("SaveWithLock", mock.Anything, quote).Return(nil)

		response, err := service.Send(context.Background(), quote.ID)

		require.NoError(t, err)
		assert.Equal(t, "SENT", response.Status)
		assert.Equal(t, 2, quote.Version)
		repo.AssertExpectations(t)
	})

	t.Run("accept requires sent status", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, quote.ID).Return(quote, nil)

		_, err = service.Accept(context.Background(), quote.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("concurrent modification surfaces conflict", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, quote.ID).Return(quote, nil)
		repo.On("SaveWithLock", mock.Anything, quote).Return(shared.ErrConcurrencyConflict)

		_, err = service.Send(context.Background(), quote.ID)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestQuoteService_List(t *testing.T) {
	t.Run("applies default pagination", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		expectedFilter := shared.DefaultFilter()
		repo.On("FindAll", mock.Anything, expectedFilter).Return([]trade.Quote{*quote}, nil)
		repo.On("Count", mock.Anything, expectedFilter).Return(int64(1), nil)

		page, err := service.List(context.Background(), QuoteListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
		assert.Equal(t, 1, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "QT-2025-0001", page.Items[0].QuoteNumber)
	})

	t.Run("explicit paging overrides the defaults", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		service := NewQuoteService(repo, newTestGenerator(newStubCounters()), nil)

		expectedFilter := shared.DefaultFilter()
		expectedFilter.Page = 3
		expectedFilter.PageSize = 10
		expectedFilter.Search = "Acme"
		repo.On("FindAll", mock.Anything, expectedFilter).Return([]trade.Quote{}, nil)
		repo.On("Count", mock.Anything, expectedFilter).Return(int64(25), nil)

		page, err := service.List(context.Background(), QuoteListFilter{Page: 3, PageSize: 10, Search: "Acme"})

		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Empty(t, page.Items)
	})
}
