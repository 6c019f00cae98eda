package a

type app struct{}

func (app) QueueUpdate(f func())     {}
func (app) QueueUpdateDraw(f func()) {}

type fetcher struct{}

func (fetcher) FetchCatalog() error { return nil }

func nested(a app) {
	a.QueueUpdateDraw(func() {
		a.QueueUpdateDraw(func() {}) // want `QueueUpdateDraw inside QueueUpdateDraw callback can deadlock tview`
	})

	a.QueueUpdate(func() {
		a.QueueUpdateDraw(func() {}) // want `QueueUpdateDraw inside QueueUpdate callback can deadlock tview`
	})
}

func blocking(a app, f fetcher) {
	a.QueueUpdateDraw(func() {
		_ = f.FetchCatalog() // want `FetchCatalog blocks the UI goroutine inside QueueUpdateDraw callback`
	})
}

func allowed(a app, f fetcher) {
	go func() {
		_ = f.FetchCatalog()
		a.QueueUpdateDraw(func() {})
	}()

	a.QueueUpdateDraw(func() {
		go func() {
			a.QueueUpdateDraw(func() {})
		}()

		go a.QueueUpdate(func() {})
	})

	refresh := func() {}
	a.QueueUpdateDraw(refresh)
}
