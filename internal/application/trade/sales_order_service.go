package trade

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
)

// SalesOrderService handles sales order business operations
type SalesOrderService struct {
	orderRepo trade.SalesOrderRepository
	quoteRepo trade.QuoteRepository
	generator *numbering.Generator
	logger    *zap.Logger
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	quoteRepo trade.QuoteRepository,
	generator *numbering.Generator,
	logger *zap.Logger,
) *SalesOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesOrderService{
		orderRepo: orderRepo,
		quoteRepo: quoteRepo,
		generator: generator,
		logger:    logger,
	}
}

// Create creates a new sales order with a generated document number.
// When a quote is referenced it must exist and be accepted.
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	if req.QuoteID != nil {
		quote, err := s.quoteRepo.FindByID(ctx, *req.QuoteID)
		if err != nil {
			return nil, err
		}
		if quote.Status != trade.QuoteStatusAccepted {
			return nil, shared.NewDomainError("QUOTE_NOT_ACCEPTED", "Sales orders can only be created from accepted quotes")
		}
	}

	number := s.generator.GenerateSalesOrderNumber(ctx)
	if number.Fallback {
		s.logger.Warn("Sales order created with fallback number",
			zap.String("order_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	order, err := trade.NewSalesOrder(number.Value, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	if req.QuoteID != nil {
		order.LinkQuote(*req.QuoteID)
	}
	if req.TotalAmount != nil {
		if err := order.SetTotalAmount(*req.TotalAmount); err != nil {
			return nil, err
		}
	}
	if req.Remark != "" {
		order.Remark = req.Remark
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Confirm transitions a draft sales order to CONFIRMED
func (s *SalesOrderService) Confirm(ctx context.Context, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	order.IncrementVersion()
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}
