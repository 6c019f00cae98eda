package components

import (
	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/internal/ui/theme"
)

func newEmptyView() *tview.TextView {
	view := tview.NewTextView()
	view.SetTextAlign(tview.AlignCenter)
	view.SetDynamicColors(true)
	view.SetText(theme.Tag(theme.Colors.Error, models.EmptyMessage))

	return view
}

// centered places p in the middle of the screen, height rows tall.
func centered(p tview.Primitive, height int) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p, height, 0, false).
		AddItem(nil, 0, 1, false)
}

func (a *App) createPages() *tview.Pages {
	ready := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.categoryBar, 1, 0, false).
		AddItem(a.productList, 0, 1, true)

	pages := tview.NewPages()
	pages.AddPage(pageLoading, centered(a.spinner, 1), true, true)
	pages.AddPage(pageEmpty, centered(a.emptyView, 1), true, false)
	pages.AddPage(pageReady, ready, true, false)

	return pages
}

func (a *App) createMainLayout() *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.footer, 1, 0, false)
}
