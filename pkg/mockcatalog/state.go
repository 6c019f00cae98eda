// Package mockcatalog serves a fixture product catalog over HTTP.
//
// It backs cmd/catalog-mock-api and the HTTP tests. The served shape follows
// the public fake store API: a JSON array of objects with id, title, price,
// description, category, image and rating.
package mockcatalog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Mode selects how the products endpoint answers.
type Mode string

const (
	// ModeOK serves the fixture catalog.
	ModeOK Mode = "ok"
	// ModeEmpty serves an empty JSON array.
	ModeEmpty Mode = "empty"
	// ModeFail answers 503.
	ModeFail Mode = "fail"
	// ModeMalformed answers 200 with a body that is not a product array.
	ModeMalformed Mode = "malformed"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeOK, ModeEmpty, ModeFail, ModeMalformed:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want ok, empty, fail or malformed)", s)
	}
}

// MockRating mirrors the upstream rating object.
type MockRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// MockProduct is one fixture record as it goes over the wire.
type MockProduct struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Rating      MockRating `json:"rating"`
}

// MockState holds the served catalog and the answer mode.
type MockState struct {
	mu       sync.RWMutex
	Products []MockProduct
	mode     Mode
	delay    time.Duration
	requests int
}

// NewMockState creates a state serving the fixture catalog in ModeOK.
func NewMockState() *MockState {
	return &MockState{
		Products: FixtureProducts(),
		mode:     ModeOK,
	}
}

// SetMode changes how subsequent requests are answered.
func (s *MockState) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Mode returns the current answer mode.
func (s *MockState) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetDelay makes every products request wait before answering.
func (s *MockState) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Requests returns how many product requests were served.
func (s *MockState) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

func (s *MockState) recordRequest() (Mode, time.Duration, []MockProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	products := make([]MockProduct, len(s.Products))
	copy(products, s.Products)

	return s.mode, s.delay, products
}

// FixtureProducts returns the built-in catalog, covering every category.
func FixtureProducts() []MockProduct {
	return []MockProduct{
		{
			ID: 1, Title: "Fjallraven Foldsack No. 1 Backpack", Price: 109.95,
			Description: "Your perfect pack for everyday use and walks in the forest.",
			Category:    "men's clothing", Image: "https://example.com/img/1.jpg",
			Rating: MockRating{Rate: 3.9, Count: 120},
		},
		{
			ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirts", Price: 22.3,
			Description: "Slim-fitting style, contrast raglan long sleeve.",
			Category:    "men's clothing", Image: "https://example.com/img/2.jpg",
			Rating: MockRating{Rate: 4.1, Count: 259},
		},
		{
			ID: 5, Title: "Legends Naga Gold & Silver Dragon Bracelet", Price: 695,
			Description: "From our Legends Collection, inspired by the mythical water dragon.",
			Category:    "jewelery", Image: "https://example.com/img/5.jpg",
			Rating: MockRating{Rate: 4.6, Count: 400},
		},
		{
			ID: 6, Title: "Solid Gold Petite Micropave", Price: 168,
			Description: "Satisfaction guaranteed. Return or exchange within 30 days.",
			Category:    "jewelery", Image: "https://example.com/img/6.jpg",
			Rating: MockRating{Rate: 3.9, Count: 70},
		},
		{
			ID: 9, Title: "WD 2TB Elements Portable External Hard Drive", Price: 64,
			Description: "USB 3.0 and USB 2.0 compatibility, fast data transfers.",
			Category:    "electronics", Image: "https://example.com/img/9.jpg",
			Rating: MockRating{Rate: 3.3, Count: 203},
		},
		{
			ID: 10, Title: "SanDisk SSD PLUS 1TB Internal SSD", Price: 109,
			Description: "Easy upgrade for faster boot up, shutdown and application load.",
			Category:    "electronics", Image: "https://example.com/img/10.jpg",
			Rating: MockRating{Rate: 2.9, Count: 470},
		},
		{
			ID: 15, Title: "BIYLACLESEN Women's 3-in-1 Snowboard Jacket", Price: 56.99,
			Description: "Detachable liner fabric, warm fleece.",
			Category:    "women's clothing", Image: "https://example.com/img/15.jpg",
			Rating: MockRating{Rate: 2.6, Count: 235},
		},
		{
			ID: 18, Title: "MBJ Women's Solid Short Sleeve Boat Neck V", Price: 9.85,
			Description: "Lightweight fabric with great stretch for comfort.",
			Category:    "women's clothing", Image: "https://example.com/img/18.jpg",
			Rating: MockRating{Rate: 4.7, Count: 130},
		},
	}
}
