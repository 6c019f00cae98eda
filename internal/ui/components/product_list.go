package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/theme"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// ProductList renders the visible products as item cards. Each card is a
// tview region keyed by list position and product ID; the cursor highlights
// one of them.
type ProductList struct {
	*tview.TextView
	products []catalog.Product
	current  int
}

var _ ProductListComponent = (*ProductList)(nil)

// NewProductList creates an empty product list.
func NewProductList() *ProductList {
	view := tview.NewTextView()
	view.SetDynamicColors(true)
	view.SetRegions(true)
	view.SetWrap(true)
	view.SetWordWrap(true)
	view.SetBorder(true)
	view.SetBorderColor(theme.Colors.Border)

	return &ProductList{TextView: view}
}

// SetProducts replaces the rendered products and moves the cursor to the
// first one.
func (l *ProductList) SetProducts(label string, products []catalog.Product) {
	l.products = products
	l.current = 0

	l.SetTitle(fmt.Sprintf(" %s ", label))
	l.Highlight()

	if len(products) == 0 {
		l.SetText(theme.Tag(theme.Colors.Secondary, "No products in "+tview.Escape(label)+"."))
		l.ScrollToBeginning()

		return
	}

	cards := make([]string, 0, len(products))
	for i, p := range products {
		cards = append(cards, ItemCard(i, p))
	}

	l.SetText(strings.Join(cards, "\n"))
	l.highlightCurrent()
	l.ScrollToBeginning()
}

// Products returns the products currently rendered.
func (l *ProductList) Products() []catalog.Product {
	return l.products
}

// Selected returns the product under the cursor.
func (l *ProductList) Selected() (catalog.Product, bool) {
	if l.current < 0 || l.current >= len(l.products) {
		return catalog.Product{}, false
	}

	return l.products[l.current], true
}

// Move shifts the cursor by delta, clamped to the list.
func (l *ProductList) Move(delta int) {
	if len(l.products) == 0 {
		return
	}

	l.current = max(0, min(len(l.products)-1, l.current+delta))
	l.highlightCurrent()
}

func (l *ProductList) highlightCurrent() {
	p, ok := l.Selected()
	if !ok {
		return
	}

	l.Highlight(ItemCardRegion(l.current, p.ID))
	l.ScrollToHighlight()
}
