package trade

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/quoteline/backend/internal/domain/numbering"
	"github.com/quoteline/backend/internal/domain/shared"
	"github.com/quoteline/backend/internal/domain/trade"
)

// MockQuoteRepository is a mock implementation of QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByQuoteNumber(ctx context.Context, quoteNumber string) (*trade.Quote, error) {
	args := m.Called(ctx, quoteNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *trade.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) SaveWithLock(ctx context.Context, quote *trade.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesOrderRepository is a mock implementation of SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.SalesOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubCounters and stubSettings back a real number generator in tests

type stubCounters struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func newStubCounters() *stubCounters {
	return &stubCounters{values: map[string]int64{}}
}

func (c *stubCounters) Increment(_ context.Context, namespace string, year int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	key := numbering.CounterKey(namespace, year)
	c.values[key]++
	return c.values[key], nil
}

func (c *stubCounters) Set(_ context.Context, namespace string, year int, value int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[numbering.CounterKey(namespace, year)] = value
	return nil
}

func (c *stubCounters) Reset(_ context.Context, namespace string, year int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, numbering.CounterKey(namespace, year))
	return nil
}

func (c *stubCounters) Peek(_ context.Context, namespace string, year int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[numbering.CounterKey(namespace, year)], nil
}

func (c *stubCounters) DeleteNamespace(_ context.Context, namespace string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := namespace + "_counter_"
	for key := range c.values {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.values, key)
		}
	}
	return nil
}

type stubSettings struct{}

func (stubSettings) Get(context.Context, string) (string, error) { return "", shared.ErrNotFound }
func (stubSettings) Set(context.Context, string, string) error   { return nil }
func (stubSettings) Delete(context.Context, string) error        { return nil }
func (stubSettings) GetAll(context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

// newTestGenerator builds a generator pinned to 2025 over in-memory stores
func newTestGenerator(counters numbering.CounterStore) *numbering.Generator {
	clock := shared.FixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return numbering.NewGenerator(counters, stubSettings{}, clock, nil)
}
