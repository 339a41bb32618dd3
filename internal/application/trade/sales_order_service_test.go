package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
)

func TestSalesOrderService_Create(t *testing.T) {
	t.Run("creates order with generated number", func(t *testing.T) {
		orderRepo := new(MockSalesOrderRepository)
		quoteRepo := new(MockQuoteRepository)
		service := NewSalesOrderService(orderRepo, quoteRepo, newTestGenerator(newStubCounters()), nil)

		orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

		response, err := service.Create(context.Background(), CreateSalesOrderRequest{
			CustomerID:   uuid.New(),
			CustomerName: "Acme Corp",
		})

		require.NoError(t, err)
		assert.Equal(t, "SO-2025-0001", response.OrderNumber)
		orderRepo.AssertExpectations(t)
	})

	t.Run("accepted quote can be converted", func(t *testing.T) {
		orderRepo := new(MockSalesOrderRepository)
		quoteRepo := new(MockQuoteRepository)
		service := NewSalesOrderService(orderRepo, quoteRepo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)
		require.NoError(t, quote.Send())
		require.NoError(t, quote.Accept())

		quoteRepo.On("FindByID", mock.Anything, quote.ID).Return(quote, nil)
		orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

		response, err := service.Create(context.Background(), CreateSalesOrderRequest{
			QuoteID:      &quote.ID,
			CustomerID:   quote.CustomerID,
			CustomerName: quote.CustomerName,
		})

		require.NoError(t, err)
		require.NotNil(t, response.QuoteID)
		assert.Equal(t, quote.ID, *response.QuoteID)
	})

	t.Run("draft quote cannot be converted", func(t *testing.T) {
		orderRepo := new(MockSalesOrderRepository)
		quoteRepo := new(MockQuoteRepository)
		service := NewSalesOrderService(orderRepo, quoteRepo, newTestGenerator(newStubCounters()), nil)

		quote, err := trade.NewQuote("QT-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		quoteRepo.On("FindByID", mock.Anything, quote.ID).Return(quote, nil)

		_, err = service.Create(context.Background(), CreateSalesOrderRequest{
			QuoteID:      &quote.ID,
			CustomerID:   quote.CustomerID,
			CustomerName: quote.CustomerName,
		})

		assert.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "QUOTE_NOT_ACCEPTED", domainErr.Code)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_Confirm(t *testing.T) {
	t.Run("confirms draft order under lock", func(t *testing.T) {
		orderRepo := new(MockSalesOrderRepository)
		quoteRepo := new(MockQuoteRepository)
		service := NewSalesOrderService(orderRepo, quoteRepo, newTestGenerator(newStubCounters()), nil)

		order, err := trade.NewSalesOrder("SO-2025-0001", uuid.New(), "Acme Corp")
		require.NoError(t, err)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)

		response, err := service.Confirm(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", response.Status)
		assert.Equal(t, 2, order.Version)
	})
}
