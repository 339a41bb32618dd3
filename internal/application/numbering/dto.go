package numbering

import (
	"github.com/quoteline/backend/internal/domain/numbering"
)

// SchemeResponse is the effective numbering configuration for one document type
type SchemeResponse struct {
	Type             string `json:"type"`
	Prefix           string `json:"prefix"`
	Format           string `json:"format"`
	CounterNamespace string `json:"counter_namespace"`
	PrefixKey        string `json:"prefix_key"`
	FormatKey        string `json:"format_key"`
}

// UpdateSchemeRequest updates the stored prefix and/or format template of a
// document type. Omitted fields are left unchanged.
type UpdateSchemeRequest struct {
	Prefix *string `json:"prefix" binding:"omitempty,min=1,max=20"`
	Format *string `json:"format" binding:"omitempty,min=1,max=100"`
}

// CounterResponse is the current value of one yearly counter
type CounterResponse struct {
	Namespace string `json:"namespace"`
	Year      int    `json:"year"`
	Value     int64  `json:"value"`
}

// SetCounterRequest forces a counter to a specific value
type SetCounterRequest struct {
	Value int64 `json:"value" binding:"min=0"`
}

// MigrateRequest selects document types for a renumbering run
type MigrateRequest = numbering.MigrateOptions

// MigrateResponse reports the outcome of a renumbering run
type MigrateResponse = numbering.MigrationReport
