package components

import (
	"context"
	"sync/atomic"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

const (
	pageLoading = "loading"
	pageEmpty   = "empty"
	pageReady   = "ready"
)

// App is the main application component.
type App struct {
	*tview.Application
	ctx     context.Context
	fetcher catalog.Fetcher
	config  config.Config
	state   *models.ViewState

	pages       *tview.Pages
	header      *Header
	spinner     *Spinner
	emptyView   *tview.TextView
	categoryBar *CategoryBar
	productList *ProductList
	footer      *Footer
	mainLayout  *tview.Flex

	// queue hands a callback to the UI goroutine.
	queue func(func())

	initialCategory string
	fetchStarted    atomic.Bool
	stopped         atomic.Bool
}

// NewApp creates the application with all UI components in the loading
// state. The catalog is not fetched until Run.
func NewApp(ctx context.Context, fetcher catalog.Fetcher, cfg *config.Config) *App {
	app := &App{
		Application: tview.NewApplication(),
		ctx:         ctx,
		fetcher:     fetcher,
		config:      *cfg,
		state:       models.NewViewState(models.GetUILogger()),
	}
	app.queue = func(f func()) { app.QueueUpdateDraw(f) }

	app.header = NewHeader(cfg.ProductsURL)
	app.spinner = NewSpinner()
	app.emptyView = newEmptyView()
	app.categoryBar = NewCategoryBar()
	app.productList = NewProductList()
	app.footer = NewFooter(cfg.KeyBindings)

	app.pages = app.createPages()
	app.mainLayout = app.createMainLayout()

	app.setupKeyboardHandlers()

	app.SetRoot(app.mainLayout, true)
	app.refresh()

	return app
}

// SetInitialCategory selects label once the catalog is ready. Unknown
// labels are logged and ignored.
func (a *App) SetInitialCategory(label string) {
	a.initialCategory = label
}

// State exposes the view state for inspection.
func (a *App) State() *models.ViewState {
	return a.state
}

// settle applies the fetch outcome. Must run on the UI goroutine.
func (a *App) settle(products []catalog.Product, err error) {
	uiLogger := models.GetUILogger()

	a.spinner.Stop()
	a.state.Settle(products, err)

	if a.initialCategory != "" && a.state.Phase() == models.PhaseReady {
		if !a.state.SelectLabel(a.initialCategory) {
			uiLogger.Info("Ignoring unknown category %q", a.initialCategory)
		}
	}

	uiLogger.Debug("View state is now %s", a.state.Phase())
	a.refresh()
}

// refresh syncs every component with the view state.
func (a *App) refresh() {
	switch a.state.Phase() {
	case models.PhaseLoading:
		a.footer.ClearCounts()
		a.pages.SwitchToPage(pageLoading)
	case models.PhaseEmpty:
		a.footer.ClearCounts()
		a.pages.SwitchToPage(pageEmpty)
	case models.PhaseReady:
		visible := a.state.Visible()
		a.categoryBar.SetActive(a.state.Cursor())
		a.productList.SetProducts(a.state.Active(), visible)
		a.footer.SetCounts(len(visible), len(a.state.Catalog()))
		a.pages.SwitchToPage(pageReady)
		a.SetFocus(a.productList)
	}
}

// CurrentPage returns the name of the page in front.
func (a *App) CurrentPage() string {
	name, _ := a.pages.GetFrontPage()
	return name
}
