package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// MockLogger is a mock implementation of the Logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.Called(format, args)
}

// MockFetcher is a mock implementation of catalog.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

// GatedFetcher blocks FetchCatalog until Release is called, so tests can
// observe the loading state before the fetch settles.
type GatedFetcher struct {
	Products []catalog.Product
	Err      error

	release chan struct{}
	once    sync.Once
	mu      sync.Mutex
	calls   int
}

// NewGatedFetcher creates a fetcher that returns products and err once released.
func NewGatedFetcher(products []catalog.Product, err error) *GatedFetcher {
	return &GatedFetcher{
		Products: products,
		Err:      err,
		release:  make(chan struct{}),
	}
}

func (f *GatedFetcher) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	select {
	case <-f.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return f.Products, f.Err
}

// Release unblocks every pending and future FetchCatalog call.
func (f *GatedFetcher) Release() {
	f.once.Do(func() { close(f.release) })
}

// Calls returns how many times FetchCatalog was entered.
func (f *GatedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// TestLogger is a simple test logger that captures log messages
type TestLogger struct {
	mu            sync.Mutex
	DebugMessages []string
	InfoMessages  []string
	ErrorMessages []string
}

func (l *TestLogger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.DebugMessages = append(l.DebugMessages, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.InfoMessages = append(l.InfoMessages, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ErrorMessages = append(l.ErrorMessages, fmt.Sprintf(format, args...))
}

// Errors returns a snapshot of the captured error messages.
func (l *TestLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.ErrorMessages))
	copy(out, l.ErrorMessages)
	return out
}

func (l *TestLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.DebugMessages = nil
	l.InfoMessages = nil
	l.ErrorMessages = nil
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{
		DebugMessages: make([]string, 0),
		InfoMessages:  make([]string, 0),
		ErrorMessages: make([]string, 0),
	}
}

// SampleProducts returns the three-product catalog used across tests:
// electronics, jewelery, electronics.
func SampleProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Category: "electronics", Title: "Monitor"},
		{ID: "2", Category: "jewelery", Title: "Ring"},
		{ID: "3", Category: "electronics", Title: "SSD"},
	}
}
