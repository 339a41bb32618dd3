package handler

import (
	"github.com/gin-gonic/gin"

	procurementapp "github.com/quoteline/backend/internal/application/procurement"
)

// ProcurementHandler handles vendor purchase order and goods receipt endpoints
type ProcurementHandler struct {
	BaseHandler
	service *procurementapp.Service
}

// NewProcurementHandler creates a new ProcurementHandler
func NewProcurementHandler(service *procurementapp.Service) *ProcurementHandler {
	return &ProcurementHandler{service: service}
}

// CreateVendorPo handles POST /procurement/purchase-orders
func (h *ProcurementHandler) CreateVendorPo(c *gin.Context) {
	var req procurementapp.CreateVendorPoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.service.CreateVendorPo(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, po)
}

// GetVendorPo handles GET /procurement/purchase-orders/:id
func (h *ProcurementHandler) GetVendorPo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.service.GetVendorPo(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// IssueVendorPo handles POST /procurement/purchase-orders/:id/issue
func (h *ProcurementHandler) IssueVendorPo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.service.IssueVendorPo(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// ReceiveVendorPo handles POST /procurement/purchase-orders/:id/receive
// Receiving a purchase order creates a goods received note
func (h *ProcurementHandler) ReceiveVendorPo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req procurementapp.CreateGrnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	grn, err := h.service.ReceiveVendorPo(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, grn)
}

// GetGrn handles GET /procurement/goods-received-notes/:id
func (h *ProcurementHandler) GetGrn(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid goods received note ID format")
		return
	}

	grn, err := h.service.GetGrn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, grn)
}
