package numbering

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
)

// Service exposes the numbering administration operations: inspecting and
// updating schemes, managing counters, and running renumbering migrations.
type Service struct {
	settings numbering.SettingsStore
	counters numbering.CounterStore
	migrator *numbering.Migrator
	clock    shared.Clock
	logger   *zap.Logger
}

// NewService creates a numbering Service. A nil clock defaults to the
// system clock; a nil logger defaults to a no-op logger.
func NewService(
	settings numbering.SettingsStore,
	counters numbering.CounterStore,
	migrator *numbering.Migrator,
	clock shared.Clock,
	logger *zap.Logger,
) *Service {
	if clock == nil {
		clock = shared.SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		settings: settings,
		counters: counters,
		migrator: migrator,
		clock:    clock,
		logger:   logger,
	}
}

// ListSchemes returns the effective numbering configuration of every
// document type.
func (s *Service) ListSchemes(ctx context.Context) ([]SchemeResponse, error) {
	types := numbering.AllDocumentTypes()
	responses := make([]SchemeResponse, 0, len(types))
	for _, t := range types {
		response, err := s.GetScheme(ctx, t.String())
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

// GetScheme returns the effective numbering configuration of one document type
func (s *Service) GetScheme(ctx context.Context, docType string) (*SchemeResponse, error) {
	t, err := numbering.ParseDocumentType(docType)
	if err != nil {
		return nil, err
	}
	scheme, err := numbering.SchemeFor(t)
	if err != nil {
		return nil, err
	}

	prefix, err := s.resolveSetting(ctx, scheme.PrefixKeys, scheme.DefaultPrefix)
	if err != nil {
		return nil, err
	}
	format, err := s.resolveSetting(ctx, scheme.FormatKeys, scheme.DefaultFormat)
	if err != nil {
		return nil, err
	}

	return &SchemeResponse{
		Type:             t.String(),
		Prefix:           prefix,
		Format:           format,
		CounterNamespace: scheme.CounterNamespace,
		PrefixKey:        scheme.PrefixKeys[0],
		FormatKey:        scheme.FormatKeys[0],
	}, nil
}

// UpdateScheme stores a new prefix and/or format template for a document
// type under its primary settings keys. A format template without a counter
// token is rejected before anything is written. Generation picks the change
// up on the next call; existing documents keep their numbers until a
// migration run rewrites them.
func (s *Service) UpdateScheme(ctx context.Context, docType string, req UpdateSchemeRequest) (*SchemeResponse, error) {
	t, err := numbering.ParseDocumentType(docType)
	if err != nil {
		return nil, err
	}
	scheme, err := numbering.SchemeFor(t)
	if err != nil {
		return nil, err
	}

	if req.Format != nil {
		if err := numbering.ValidateFormat(*req.Format); err != nil {
			return nil, err
		}
	}

	if req.Prefix != nil {
		if err := s.settings.Set(ctx, scheme.PrefixKeys[0], *req.Prefix); err != nil {
			return nil, err
		}
	}
	if req.Format != nil {
		if err := s.settings.Set(ctx, scheme.FormatKeys[0], *req.Format); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Numbering scheme updated",
		zap.String("document_type", t.String()),
		zap.Bool("prefix_changed", req.Prefix != nil),
		zap.Bool("format_changed", req.Format != nil),
	)

	return s.GetScheme(ctx, docType)
}

// GetCounter returns the current counter value for a document type's
// namespace in the given year. A zero year means the current year.
func (s *Service) GetCounter(ctx context.Context, docType string, year int) (*CounterResponse, error) {
	scheme, err := s.schemeFor(docType)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.clock.Now().Year()
	}

	value, err := s.counters.Peek(ctx, scheme.CounterNamespace, year)
	if err != nil {
		return nil, err
	}
	return &CounterResponse{
		Namespace: scheme.CounterNamespace,
		Year:      year,
		Value:     value,
	}, nil
}

// SetCounter forces the counter for a document type's namespace to a value.
// The next generated number uses value+1.
func (s *Service) SetCounter(ctx context.Context, docType string, year int, req SetCounterRequest) (*CounterResponse, error) {
	scheme, err := s.schemeFor(docType)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.clock.Now().Year()
	}

	if err := s.counters.Set(ctx, scheme.CounterNamespace, year, req.Value); err != nil {
		return nil, err
	}

	s.logger.Info("Counter forced",
		zap.String("namespace", scheme.CounterNamespace),
		zap.Int("year", year),
		zap.Int64("value", req.Value),
	)

	return &CounterResponse{
		Namespace: scheme.CounterNamespace,
		Year:      year,
		Value:     req.Value,
	}, nil
}

// ResetCounter removes the counter so the next generated number restarts at 1
func (s *Service) ResetCounter(ctx context.Context, docType string, year int) error {
	scheme, err := s.schemeFor(docType)
	if err != nil {
		return err
	}
	if year == 0 {
		year = s.clock.Now().Year()
	}

	if err := s.counters.Reset(ctx, scheme.CounterNamespace, year); err != nil {
		return err
	}

	s.logger.Info("Counter reset",
		zap.String("namespace", scheme.CounterNamespace),
		zap.Int("year", year),
	)
	return nil
}

// Migrate renumbers existing documents under the current schemes
func (s *Service) Migrate(ctx context.Context, req MigrateRequest) (*MigrateResponse, error) {
	report := s.migrator.MigrateAll(ctx, req)
	return &report, nil
}

func (s *Service) schemeFor(docType string) (numbering.Scheme, error) {
	t, err := numbering.ParseDocumentType(docType)
	if err != nil {
		return numbering.Scheme{}, err
	}
	return numbering.SchemeFor(t)
}

// resolveSetting mirrors the generator's fallback chain so the admin view
// reports exactly what generation would use.
func (s *Service) resolveSetting(ctx context.Context, keys []string, fallback string) (string, error) {
	for _, key := range keys {
		value, err := s.settings.Get(ctx, key)
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
