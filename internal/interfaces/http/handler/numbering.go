package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	numberingapp "github.com/quoteline/backend/internal/application/numbering"
)

// NumberingHandler handles document numbering administration endpoints
type NumberingHandler struct {
	BaseHandler
	service *numberingapp.Service
}

// NewNumberingHandler creates a new NumberingHandler
func NewNumberingHandler(service *numberingapp.Service) *NumberingHandler {
	return &NumberingHandler{service: service}
}

// ListSchemes handles GET /admin/numbering/schemes
func (h *NumberingHandler) ListSchemes(c *gin.Context) {
	schemes, err := h.service.ListSchemes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, schemes)
}

// GetScheme handles GET /admin/numbering/schemes/:type
func (h *NumberingHandler) GetScheme(c *gin.Context) {
	scheme, err := h.service.GetScheme(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, scheme)
}

// UpdateScheme handles PUT /admin/numbering/schemes/:type
func (h *NumberingHandler) UpdateScheme(c *gin.Context) {
	var req numberingapp.UpdateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scheme, err := h.service.UpdateScheme(c.Request.Context(), c.Param("type"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, scheme)
}

// GetCounter handles GET /admin/numbering/schemes/:type/counter
// The year query parameter defaults to the current year when omitted
func (h *NumberingHandler) GetCounter(c *gin.Context) {
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	counter, err := h.service.GetCounter(c.Request.Context(), c.Param("type"), year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counter)
}

// SetCounter handles PUT /admin/numbering/schemes/:type/counter
func (h *NumberingHandler) SetCounter(c *gin.Context) {
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	var req numberingapp.SetCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	counter, err := h.service.SetCounter(c.Request.Context(), c.Param("type"), year, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counter)
}

// ResetCounter handles DELETE /admin/numbering/schemes/:type/counter
func (h *NumberingHandler) ResetCounter(c *gin.Context) {
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	if err := h.service.ResetCounter(c.Request.Context(), c.Param("type"), year); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Migrate handles POST /admin/numbering/migrate. Every flag is optional and
// defaults to enabled, so an empty request body runs a full migration.
func (h *NumberingHandler) Migrate(c *gin.Context) {
	var req numberingapp.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.service.Migrate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// yearQuery parses the optional year query parameter, zero meaning current year
func (h *NumberingHandler) yearQuery(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return 0, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		h.BadRequest(c, "Invalid year parameter")
		return 0, false
	}
	return year, true
}
