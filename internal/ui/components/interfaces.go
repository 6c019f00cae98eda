package components

import (
	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/pkg/catalog"
)

type SpinnerComponent interface {
	tview.Primitive
	Start(queue func(func()))
	Stop()
	Running() bool
	Frame() string
}

type CategoryBarComponent interface {
	tview.Primitive
	SetActive(int)
	Active() int
}

type ProductListComponent interface {
	tview.Primitive
	SetProducts(label string, products []catalog.Product)
	Products() []catalog.Product
	Selected() (catalog.Product, bool)
	Move(int)
}

type FooterComponent interface {
	tview.Primitive
	SetCounts(visible, total int)
	ClearCounts()
	Status() string
}
