package numbering

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/quoteline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// GeneratedNumber is the outcome of one generation attempt. Value is always
// usable; Fallback marks a randomized best-effort number produced after an
// internal failure, with Cause carrying the failure so callers can decide to
// retry, alert, or accept it.
type GeneratedNumber struct {
	Value    string
	Type     DocumentType
	Counter  int64
	Fallback bool
	Cause    error
}

// Generator produces document numbers. It never fails its caller: any
// internal error is logged and replaced with a randomized fallback number so
// document creation is not blocked by a numbering problem. The trade-off is
// that under failure the uniqueness guarantee degrades from exact to
// statistically-unlikely collision.
type Generator struct {
	counters CounterStore
	settings SettingsStore
	clock    shared.Clock
	logger   *zap.Logger
}

// NewGenerator creates a Generator. A nil clock defaults to the system
// clock; a nil logger defaults to a no-op logger.
func NewGenerator(counters CounterStore, settings SettingsStore, clock shared.Clock, logger *zap.Logger) *Generator {
	if clock == nil {
		clock = shared.SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		counters: counters,
		settings: settings,
		clock:    clock,
		logger:   logger,
	}
}

// GenerateQuoteNumber generates the next quote number
func (g *Generator) GenerateQuoteNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeQuote)
}

// GenerateMasterInvoiceNumber generates the next master invoice number
func (g *Generator) GenerateMasterInvoiceNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeMasterInvoice)
}

// GenerateChildInvoiceNumber generates the next child invoice number.
// Child invoices draw from the same counter as master invoices.
func (g *Generator) GenerateChildInvoiceNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeChildInvoice)
}

// GenerateVendorPoNumber generates the next vendor purchase order number
func (g *Generator) GenerateVendorPoNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeVendorPo)
}

// GenerateGrnNumber generates the next goods-received note number
func (g *Generator) GenerateGrnNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeGrn)
}

// GenerateSalesOrderNumber generates the next sales order number
func (g *Generator) GenerateSalesOrderNumber(ctx context.Context) GeneratedNumber {
	return g.Generate(ctx, DocTypeSalesOrder)
}

// Generate produces the next number for a document type: resolve prefix and
// format through the settings fallback chain, draw the counter, render.
func (g *Generator) Generate(ctx context.Context, t DocumentType) GeneratedNumber {
	scheme, err := SchemeFor(t)
	if err != nil {
		return g.fallback(Scheme{Type: t, DefaultPrefix: "DOC"}, err)
	}

	prefix, err := g.resolveSetting(ctx, scheme.PrefixKeys, scheme.DefaultPrefix)
	if err != nil {
		return g.fallback(scheme, err)
	}
	format, err := g.resolveSetting(ctx, scheme.FormatKeys, scheme.DefaultFormat)
	if err != nil {
		return g.fallback(scheme, err)
	}

	year := g.clock.Now().Year()
	counter, err := g.counters.Increment(ctx, scheme.CounterNamespace, year)
	if err != nil {
		return g.fallback(scheme, err)
	}

	return GeneratedNumber{
		Value:   Render(format, prefix, counter, year),
		Type:    t,
		Counter: counter,
	}
}

// resolveSetting walks an ordered list of candidate keys and returns the
// first configured value, or the default when no key is set. Absence of
// configuration is not an error.
func (g *Generator) resolveSetting(ctx context.Context, keys []string, fallback string) (string, error) {
	for _, key := range keys {
		value, err := g.settings.Get(ctx, key)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
	return fallback, nil
}

// fallback produces the best-effort randomized number used when generation
// fails internally.
func (g *Generator) fallback(scheme Scheme, cause error) GeneratedNumber {
	value := fmt.Sprintf("%s-%04d", scheme.DefaultPrefix, rand.IntN(10000))
	g.logger.Error("Number generation failed, returning randomized fallback",
		zap.String("document_type", scheme.Type.String()),
		zap.String("fallback_number", value),
		zap.Error(cause),
	)
	return GeneratedNumber{
		Value:    value,
		Type:     scheme.Type,
		Fallback: true,
		Cause:    cause,
	}
}
