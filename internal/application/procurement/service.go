package procurement

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/procurement"
)

// Service handles procurement business operations: vendor purchase orders
// and the goods-received notes recorded against them.
type Service struct {
	poRepo    procurement.VendorPurchaseOrderRepository
	grnRepo   procurement.GoodsReceivedNoteRepository
	generator *numbering.Generator
	logger    *zap.Logger
}

// NewService creates a procurement Service
func NewService(
	poRepo procurement.VendorPurchaseOrderRepository,
	grnRepo procurement.GoodsReceivedNoteRepository,
	generator *numbering.Generator,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		poRepo:    poRepo,
		grnRepo:   grnRepo,
		generator: generator,
		logger:    logger,
	}
}

// CreateVendorPo creates a new vendor purchase order with a generated number
func (s *Service) CreateVendorPo(ctx context.Context, req CreateVendorPoRequest) (*VendorPoResponse, error) {
	number := s.generator.GenerateVendorPoNumber(ctx)
	if number.Fallback {
		s.logger.Warn("Vendor PO created with fallback number",
			zap.String("po_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	po, err := procurement.NewVendorPurchaseOrder(number.Value, req.VendorID, req.VendorName)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount != nil {
		po.TotalAmount = *req.TotalAmount
	}
	if req.Remark != "" {
		po.Remark = req.Remark
	}

	if err := s.poRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	response := ToVendorPoResponse(po)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// GetVendorPo retrieves a vendor purchase order by ID
func (s *Service) GetVendorPo(ctx context.Context, id uuid.UUID) (*VendorPoResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVendorPoResponse(po)
	return &response, nil
}

// IssueVendorPo transitions a draft PO to ISSUED under optimistic locking
func (s *Service) IssueVendorPo(ctx context.Context, id uuid.UUID) (*VendorPoResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := po.Issue(); err != nil {
		return nil, err
	}
	po.IncrementVersion()
	if err := s.poRepo.SaveWithLock(ctx, po); err != nil {
		return nil, err
	}
	response := ToVendorPoResponse(po)
	return &response, nil
}

// ReceiveVendorPo records goods receipt against an issued PO: the PO moves
// to RECEIVED and a numbered goods-received note is created.
func (s *Service) ReceiveVendorPo(ctx context.Context, id uuid.UUID, req CreateGrnRequest) (*GrnResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := po.MarkReceived(); err != nil {
		return nil, err
	}

	number := s.generator.GenerateGrnNumber(ctx)
	if number.Fallback {
		s.logger.Warn("GRN created with fallback number",
			zap.String("grn_number", number.Value),
			zap.Error(number.Cause),
		)
	}

	grn, err := procurement.NewGoodsReceivedNote(number.Value, po.ID, req.ReceivedBy)
	if err != nil {
		return nil, err
	}
	if req.Remark != "" {
		grn.SetRemark(req.Remark)
	}

	po.IncrementVersion()
	if err := s.poRepo.SaveWithLock(ctx, po); err != nil {
		return nil, err
	}
	if err := s.grnRepo.Save(ctx, grn); err != nil {
		return nil, err
	}

	response := ToGrnResponse(grn)
	response.NumberFallback = number.Fallback
	return &response, nil
}

// GetGrn retrieves a goods-received note by ID
func (s *Service) GetGrn(ctx context.Context, id uuid.UUID) (*GrnResponse, error) {
	grn, err := s.grnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToGrnResponse(grn)
	return &response, nil
}
