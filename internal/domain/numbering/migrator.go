package numbering

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentRecord is the minimal view of a numbered document the migrator
// needs: identity, current number, and the creation timestamp that fixes its
// position in the renumbered sequence.
type DocumentRecord struct {
	ID        uuid.UUID
	Number    string
	CreatedAt time.Time
}

// DocumentSource gives the migrator access to one document type's records
type DocumentSource interface {
	ListAll(ctx context.Context) ([]DocumentRecord, error)
	UpdateNumber(ctx context.Context, id uuid.UUID, number string) error
}

// MigrateOptions selects which document types a renumbering run covers.
// A nil flag means enabled; only an explicit false skips the type. Sales
// orders are not renumbered by this operation.
type MigrateOptions struct {
	Quotes         *bool `json:"migrateQuotes"`
	VendorPos      *bool `json:"migrateVendorPos"`
	MasterInvoices *bool `json:"migrateMasterInvoices"`
	ChildInvoices  *bool `json:"migrateChildInvoices"`
	Grns           *bool `json:"migrateGrns"`
}

// MigratedCounts reports how many documents of each type were renumbered
type MigratedCounts struct {
	Quotes         int `json:"quotes"`
	VendorPos      int `json:"vendorPos"`
	MasterInvoices int `json:"masterInvoices"`
	ChildInvoices  int `json:"childInvoices"`
	Grns           int `json:"grns"`
}

// MigrationReport is the outcome of one renumbering run. Success is true
// only when no per-document or per-type error occurred anywhere in the run.
type MigrationReport struct {
	Success  bool           `json:"success"`
	Migrated MigratedCounts `json:"migrated"`
	Errors   []string       `json:"errors"`
}

// Migrator reassigns document numbers in bulk after the administrator
// changes the numbering scheme. It runs synchronously and strictly
// sequentially: parallelizing would reorder interleaved counter increments
// relative to the intended chronological assignment.
type Migrator struct {
	generator *Generator
	counters  CounterStore
	sources   map[DocumentType]DocumentSource
	logger    *zap.Logger
}

// NewMigrator creates a Migrator. A nil logger defaults to a no-op logger.
func NewMigrator(generator *Generator, counters CounterStore, logger *zap.Logger) *Migrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{
		generator: generator,
		counters:  counters,
		sources:   make(map[DocumentType]DocumentSource),
		logger:    logger,
	}
}

// RegisterSource attaches the document repository for one document type
func (m *Migrator) RegisterSource(t DocumentType, source DocumentSource) {
	m.sources[t] = source
}

// MigrateAll renumbers every enabled document type. A failure in one type
// never prevents the remaining types from being attempted, and a failure on
// one document never aborts its type's pass.
func (m *Migrator) MigrateAll(ctx context.Context, opts MigrateOptions) MigrationReport {
	report := MigrationReport{Errors: []string{}}

	passes := []struct {
		docType DocumentType
		flag    *bool
		count   *int
	}{
		{DocTypeQuote, opts.Quotes, &report.Migrated.Quotes},
		{DocTypeVendorPo, opts.VendorPos, &report.Migrated.VendorPos},
		{DocTypeMasterInvoice, opts.MasterInvoices, &report.Migrated.MasterInvoices},
		{DocTypeChildInvoice, opts.ChildInvoices, &report.Migrated.ChildInvoices},
		{DocTypeGrn, opts.Grns, &report.Migrated.Grns},
	}

	for _, pass := range passes {
		if pass.flag != nil && !*pass.flag {
			continue
		}
		*pass.count = m.migrateType(ctx, pass.docType, &report.Errors)
	}

	report.Success = len(report.Errors) == 0
	m.logger.Info("Document renumbering finished",
		zap.Bool("success", report.Success),
		zap.Int("errors", len(report.Errors)),
	)
	return report
}

// stagingNumber is the placeholder a document holds between the two update
// phases of a renumbering pass. It embeds the document ID so placeholders
// never collide with each other or with any rendered number.
func stagingNumber(id uuid.UUID) string {
	return "renumbering-" + id.String()
}

// migrateType renumbers all documents of one type in creation order,
// appending per-document failures to errs and continuing.
func (m *Migrator) migrateType(ctx context.Context, t DocumentType, errs *[]string) int {
	scheme, err := SchemeFor(t)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: %v", t, err))
		return 0
	}

	source, ok := m.sources[t]
	if !ok {
		*errs = append(*errs, fmt.Sprintf("%s: no document source registered", t))
		return 0
	}

	docs, err := source.ListAll(ctx)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: loading documents failed: %v", t, err))
		return 0
	}

	// The storage retrieval order is unspecified; the new sequence must
	// follow original creation order.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	if err := m.counters.DeleteNamespace(ctx, scheme.CounterNamespace); err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: resetting counters failed: %v", t, err))
		return 0
	}

	// Number columns are unique, and when the scheme did not change the new
	// sequence reuses values other documents still hold. Stage every document
	// onto a placeholder derived from its ID first so no final assignment can
	// collide with a number still held by a document later in the pass.
	staged := make(map[uuid.UUID]bool, len(docs))
	for _, doc := range docs {
		if err := source.UpdateNumber(ctx, doc.ID, stagingNumber(doc.ID)); err != nil {
			*errs = append(*errs, fmt.Sprintf("%s %s: staging number failed: %v", t, doc.ID, err))
			continue
		}
		staged[doc.ID] = true
	}

	migrated := 0
	for _, doc := range docs {
		number := m.generator.Generate(ctx, t)
		if !staged[doc.ID] {
			// The document keeps its old number; its sequence position is
			// burned so the remaining assignments stay aligned with
			// creation order.
			continue
		}
		if number.Fallback {
			*errs = append(*errs, fmt.Sprintf("%s %s: randomized fallback number %s assigned: %v",
				t, doc.ID, number.Value, number.Cause))
		}
		if err := source.UpdateNumber(ctx, doc.ID, number.Value); err != nil {
			*errs = append(*errs, fmt.Sprintf("%s %s: updating number failed: %v", t, doc.ID, err))
			continue
		}
		migrated++
	}

	m.logger.Info("Renumbered document type",
		zap.String("document_type", t.String()),
		zap.Int("total", len(docs)),
		zap.Int("migrated", migrated),
	)
	return migrated
}
