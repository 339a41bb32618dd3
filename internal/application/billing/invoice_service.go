package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quoteline/backend/internal/domain/billing"
	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
)

// InvoiceService handles invoice business operations. Master and child
// invoice numbers draw from the shared invoice counter, so a master and its
// children never collide on the sequence.
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	generator   *numbering.Generator
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, generator *numbering.Generator, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		generator:   generator,
		logger:      logger,
	}
}

// CreateMaster creates a new master invoice with a generated number
func (s *InvoiceService) CreateMaster(ctx context.Context, req CreateMasterInvoiceRequest) (*InvoiceResponse, error) {
	number := s.generator.GenerateMasterInvoiceNumber(ctx)
	if number.Fallback {
		s.logger.Warn("Master invoice created with fallback number",
			zap.String("invoice_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	invoice, err := billing.NewMasterInvoice(number.Value, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	invoice.SalesOrderID = req.SalesOrderID
	if req.TotalAmount != nil {
		if err := invoice.SetTotalAmount(*req.TotalAmount); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// CreateChild creates a child invoice under a master invoice. The parent
// must exist and be a master; customer identity is inherited from it.
func (s *InvoiceService) CreateChild(ctx context.Context, parentID uuid.UUID, req CreateChildInvoiceRequest) (*InvoiceResponse, error) {
	parent, err := s.invoiceRepo.FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.Kind != billing.InvoiceKindMaster {
		return nil, shared.NewDomainError("NOT_A_MASTER_INVOICE", "Child invoices can only be attached to master invoices")
	}

	number := s.generator.GenerateChildInvoiceNumber(ctx)
	if number.Fallback {
		s.logger.Warn("Child invoice created with fallback number",
			zap.String("invoice_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	invoice, err := billing.NewChildInvoice(number.Value, parent.ID, parent.CustomerID, parent.CustomerName)
	if err != nil {
		return nil, err
	}

	invoice.SalesOrderID = parent.SalesOrderID
	if req.TotalAmount != nil {
		if err := invoice.SetTotalAmount(*req.TotalAmount); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetChildren retrieves the child invoices of a master invoice
func (s *InvoiceService) GetChildren(ctx context.Context, parentID uuid.UUID) ([]InvoiceResponse, error) {
	children, err := s.invoiceRepo.FindChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	responses := make([]InvoiceResponse, len(children))
	for i := range children {
		responses[i] = ToInvoiceResponse(&children[i])
	}
	return responses, nil
}

// Issue transitions a draft invoice to ISSUED
func (s *InvoiceService) Issue(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).Issue)
}

// MarkPaid transitions an issued invoice to PAID
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).MarkPaid)
}

// Void voids an invoice that has not been paid
func (s *InvoiceService) Void(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).Void)
}

func (s *InvoiceService) transition(ctx context.Context, id uuid.UUID, fn func(*billing.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(invoice); err != nil {
		return nil, err
	}
	invoice.IncrementVersion()
	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}
