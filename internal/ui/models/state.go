// Package models holds UI state that is independent of any widget toolkit.
package models

import (
	"sync"

	"github.com/devnullvoid/shoptui/internal/logger"
	"github.com/devnullvoid/shoptui/pkg/catalog"
	"github.com/devnullvoid/shoptui/pkg/catalog/interfaces"
)

// EmptyMessage is shown whenever the catalog is empty, including when the
// fetch failed.
const EmptyMessage = "Please connect to the internet."

// Phase is the externally observable state of the product list.
type Phase int

const (
	// PhaseLoading lasts until the single catalog fetch settles.
	PhaseLoading Phase = iota
	// PhaseEmpty covers both a failed fetch and a zero-length catalog.
	PhaseEmpty
	// PhaseReady means at least one product was fetched.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ViewState tracks the fetched catalog, the active category and the
// products currently visible under it.
//
// The visible list is always an ordered subsequence of the full catalog,
// and the cursor always indexes catalog.Categories().
type ViewState struct {
	mu      sync.RWMutex
	full    []catalog.Product
	visible []catalog.Product
	cursor  int
	loading bool
	logger  interfaces.Logger
}

// NewViewState returns a state in PhaseLoading with "All" active.
// A nil logger falls back to the shared UI logger.
func NewViewState(log interfaces.Logger) *ViewState {
	if log == nil {
		log = GetUILogger()
	}

	return &ViewState{
		loading: true,
		logger:  log,
	}
}

// Settle records the outcome of the catalog fetch. A non-nil err is logged
// and treated as an empty catalog. Only the first call has any effect.
func (s *ViewState) Settle(products []catalog.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		s.logger.Debug("Ignoring catalog result after state already settled")
		return
	}

	if err != nil {
		s.logger.Error("Failed to load product catalog: %v", err)
		products = nil
	}

	if products == nil {
		products = []catalog.Product{}
	}

	s.full = products
	s.visible = products
	s.cursor = 0
	s.loading = false

	s.logger.Debug("Catalog settled with %d products", len(products))
}

// Select activates the category at index. It is ignored unless the state
// is ready and index is a valid position in catalog.Categories().
// It reports whether the selection was applied.
func (s *ViewState) Select(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phaseLocked() != PhaseReady {
		return false
	}

	label, ok := catalog.CategoryAt(index)
	if !ok {
		return false
	}

	s.cursor = index
	s.visible = catalog.SelectCategory(s.full, label)

	return true
}

// SelectLabel activates the category with the given label.
func (s *ViewState) SelectLabel(label string) bool {
	index := catalog.CategoryIndex(label)
	if index < 0 {
		return false
	}

	return s.Select(index)
}

// Step moves the cursor by delta, wrapping around the category list.
func (s *ViewState) Step(delta int) bool {
	n := catalog.CategoryCount()

	s.mu.RLock()
	next := ((s.cursor+delta)%n + n) % n
	s.mu.RUnlock()

	return s.Select(next)
}

// Phase returns the current phase.
func (s *ViewState) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.phaseLocked()
}

func (s *ViewState) phaseLocked() Phase {
	switch {
	case s.loading:
		return PhaseLoading
	case len(s.full) == 0:
		return PhaseEmpty
	default:
		return PhaseReady
	}
}

// Loading reports whether the fetch is still outstanding.
func (s *ViewState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Cursor returns the index of the active category.
func (s *ViewState) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cursor
}

// Active returns the label of the active category.
func (s *ViewState) Active() string {
	label, _ := catalog.CategoryAt(s.Cursor())
	return label
}

// Visible returns the products shown under the active category.
// The slice must not be modified.
func (s *ViewState) Visible() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visible
}

// Catalog returns the full fetched catalog. The slice must not be modified.
func (s *ViewState) Catalog() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.full
}

var (
	uiLoggerMu sync.RWMutex
	uiLogger   interfaces.Logger
)

// SetUILogger sets the shared logger instance for UI components.
func SetUILogger(log interfaces.Logger) {
	uiLoggerMu.Lock()
	defer uiLoggerMu.Unlock()

	uiLogger = log
}

// GetUILogger returns the UI logger, falling back to the global logger.
func GetUILogger() interfaces.Logger {
	uiLoggerMu.RLock()
	defer uiLoggerMu.RUnlock()

	if uiLogger != nil {
		return uiLogger
	}

	return logger.GetGlobalLogger()
}
