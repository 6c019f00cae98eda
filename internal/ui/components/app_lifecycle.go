package components

import (
	"github.com/devnullvoid/shoptui/internal/ui/models"
)

// Run fetches the catalog in the background and blocks until the user quits.
func (a *App) Run() error {
	uiLogger := models.GetUILogger()
	uiLogger.Debug("Starting application")

	a.spinner.Start(a.queue)
	a.StartFetch()

	defer func() {
		a.stopped.Store(true)
		a.spinner.Stop()
	}()

	if err := a.Application.Run(); err != nil {
		uiLogger.Error("Application run failed: %v", err)

		return err
	}

	uiLogger.Debug("Application stopped normally")

	return nil
}

// StartFetch launches the one catalog fetch. Later calls do nothing.
func (a *App) StartFetch() {
	if !a.fetchStarted.CompareAndSwap(false, true) {
		return
	}

	go a.loadCatalog()
}

func (a *App) loadCatalog() {
	uiLogger := models.GetUILogger()

	products, err := a.fetcher.FetchCatalog(a.ctx)

	// The request is never cancelled on quit; its result is just dropped.
	if a.stopped.Load() {
		uiLogger.Debug("Discarding catalog result after application stopped")
		return
	}

	a.queue(func() {
		a.settle(products, err)
	})
}
