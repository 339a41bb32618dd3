package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	numberingapp "github.com/quoteline/backend/internal/application/numbering"
	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/interfaces/http/dto"
)

// noopDocumentSource satisfies numbering.DocumentSource for routes that only
// need a registered source
type noopDocumentSource struct{}

func (noopDocumentSource) ListAll(context.Context) ([]numbering.DocumentRecord, error) {
	return nil, nil
}

func (noopDocumentSource) UpdateNumber(context.Context, uuid.UUID, string) error {
	return nil
}

func newNumberingTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	clock := shared.FixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	counters := newMemCounters()
	generator := numbering.NewGenerator(counters, emptySettings{}, clock, zap.NewNop())
	migrator := numbering.NewMigrator(generator, counters, zap.NewNop())
	for _, docType := range []numbering.DocumentType{
		numbering.DocTypeQuote,
		numbering.DocTypeVendorPo,
		numbering.DocTypeMasterInvoice,
		numbering.DocTypeChildInvoice,
		numbering.DocTypeGrn,
	} {
		migrator.RegisterSource(docType, noopDocumentSource{})
	}
	service := numberingapp.NewService(emptySettings{}, counters, migrator, clock, zap.NewNop())
	h := NewNumberingHandler(service)

	engine := gin.New()
	engine.POST("/api/v1/admin/numbering/migrate", h.Migrate)
	return engine
}

func TestNumberingHandler_Migrate_EmptyBody(t *testing.T) {
	engine := newNumberingTestServer()

	// All flags are optional; no body at all runs a full migration.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/numbering/migrate", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["success"])
}

func TestNumberingHandler_Migrate_WithFlags(t *testing.T) {
	engine := newNumberingTestServer()

	body := `{"migrateQuotes": true, "migrateGrns": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/numbering/migrate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestNumberingHandler_Migrate_MalformedBody(t *testing.T) {
	engine := newNumberingTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/numbering/migrate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
