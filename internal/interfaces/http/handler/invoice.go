package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/quoteline/backend/internal/application/billing"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// CreateMaster handles POST /billing/invoices
func (h *InvoiceHandler) CreateMaster(c *gin.Context) {
	var req billingapp.CreateMasterInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.CreateMaster(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// CreateChild handles POST /billing/invoices/:id/children
func (h *InvoiceHandler) CreateChild(c *gin.Context) {
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	var req billingapp.CreateChildInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.CreateChild(c.Request.Context(), parentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// GetByID handles GET /billing/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// GetChildren handles GET /billing/invoices/:id/children
func (h *InvoiceHandler) GetChildren(c *gin.Context) {
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	children, err := h.invoiceService.GetChildren(c.Request.Context(), parentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, children)
}

// Issue handles POST /billing/invoices/:id/issue
func (h *InvoiceHandler) Issue(c *gin.Context) {
	h.transition(c, h.invoiceService.Issue)
}

// MarkPaid handles POST /billing/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.invoiceService.MarkPaid)
}

// Void handles POST /billing/invoices/:id/void
func (h *InvoiceHandler) Void(c *gin.Context) {
	h.transition(c, h.invoiceService.Void)
}

// transition runs a status transition identified by the :id path parameter
func (h *InvoiceHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID) (*billingapp.InvoiceResponse, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}
