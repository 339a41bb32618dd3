package trade

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
)

// QuoteService handles quote business operations
type QuoteService struct {
	quoteRepo trade.QuoteRepository
	generator *numbering.Generator
	logger    *zap.Logger
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo trade.QuoteRepository, generator *numbering.Generator, logger *zap.Logger) *QuoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteService{
		quoteRepo: quoteRepo,
		generator: generator,
		logger:    logger,
	}
}

// Create creates a new quote with a generated document number.
// A fallback number never blocks creation; the response flags it so the
// caller can surface the degraded state.
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*QuoteResponse, error) {
	number := s.generator.GenerateQuoteNumber(ctx)
	if number.Fallback {
		s.logger.Warn("Quote created with fallback number",
			zap.String("quote_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	quote, err := trade.NewQuote(number.Value, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount != nil {
		if err := quote.SetTotalAmount(*req.TotalAmount); err != nil {
			return nil, err
		}
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = req.ValidUntil
	}
	if req.Remark != "" {
		quote.SetRemark(req.Remark)
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// GetByID retrieves a quote by ID
func (s *QuoteService) GetByID(ctx context.Context, id uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByNumber retrieves a quote by its document number
func (s *QuoteService) GetByNumber(ctx context.Context, quoteNumber string) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByQuoteNumber(ctx, quoteNumber)
	if err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}

// List retrieves a page of quotes with filtering
func (s *QuoteService) List(ctx context.Context, filter QuoteListFilter) (shared.Paginated[QuoteResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	quotes, err := s.quoteRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[QuoteResponse]{}, err
	}
	total, err := s.quoteRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[QuoteResponse]{}, err
	}

	responses := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = ToQuoteResponse(&quotes[i])
	}
	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// Send transitions a draft quote to SENT
func (s *QuoteService) Send(ctx context.Context, id uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, id, (*trade.Quote).Send)
}

// Accept transitions a sent quote to ACCEPTED
func (s *QuoteService) Accept(ctx context.Context, id uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, id, (*trade.Quote).Accept)
}

// Reject transitions a sent quote to REJECTED
func (s *QuoteService) Reject(ctx context.Context, id uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, id, (*trade.Quote).Reject)
}

// Delete deletes a quote
func (s *QuoteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.quoteRepo.Delete(ctx, id)
}

// transition loads a quote, applies a state change, and saves it under
// optimistic locking.
func (s *QuoteService) transition(ctx context.Context, id uuid.UUID, fn func(*trade.Quote) error) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(quote); err != nil {
		return nil, err
	}
	quote.IncrementVersion()
	if err := s.quoteRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}
