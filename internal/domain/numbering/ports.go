package numbering

import (
	"context"
	"fmt"

	"github.com/quoteline/backend/internal/domain/shared"
)

// ErrCounterCorrupt signals that the atomic increment's result could not be
// verified. It is never swallowed: falling back to a plain read here would
// silently reintroduce duplicate numbers under concurrent load, which is
// worse than a visible failure of document creation.
var ErrCounterCorrupt = shared.NewDomainError("COUNTER_CORRUPT",
	"Counter value could not be verified after atomic increment")

// CounterKey returns the settings key under which a counter row is stored
func CounterKey(namespace string, year int) string {
	return fmt.Sprintf("%s_counter_%d", namespace, year)
}

// CounterStore is the durable sequence primitive. Increment is the only
// concurrency-safe operation; Set, Reset and Peek are last-write-wins admin
// helpers and must not be used on a document-creation path.
type CounterStore interface {
	// Increment atomically creates the (namespace, year) counter at 1 or
	// increments it, and returns the new value. The first call yields 1.
	Increment(ctx context.Context, namespace string, year int) (int64, error)

	// Set overwrites the counter. Not concurrency-safe.
	Set(ctx context.Context, namespace string, year int, value int64) error

	// Reset sets the counter to 0. Not concurrency-safe.
	Reset(ctx context.Context, namespace string, year int) error

	// Peek reads the counter without modifying it, returning 0 if absent.
	Peek(ctx context.Context, namespace string, year int) (int64, error)

	// DeleteNamespace removes the namespace's counters for all years, so a
	// renumbering run restarts from 1.
	DeleteNamespace(ctx context.Context, namespace string) error
}

// SettingsStore is the generic key/value settings collaborator that holds
// numbering configuration. Get returns shared.ErrNotFound for absent keys.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
