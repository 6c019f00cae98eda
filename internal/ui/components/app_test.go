package components

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/pkg/catalog"
	"github.com/devnullvoid/shoptui/pkg/catalog/testutils"
)

func newTestApp(t *testing.T, fetcher catalog.Fetcher) *App {
	t.Helper()

	models.SetUILogger(testutils.NewTestLogger())
	t.Cleanup(func() { models.SetUILogger(nil) })

	cfg := &config.Config{
		ProductsURL: "http://shop.test/products",
		KeyBindings: config.DefaultKeyBindings(),
	}

	app := NewApp(context.Background(), fetcher, cfg)
	app.queue = func(f func()) { f() }

	return app
}

func settledApp(t *testing.T, products []catalog.Product, err error) *App {
	t.Helper()

	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(products, err).Once()

	app := newTestApp(t, fetcher)
	app.loadCatalog()
	fetcher.AssertExpectations(t)

	return app
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func visibleIDs(app *App) []string {
	out := []string{}
	for _, p := range app.productList.Products() {
		out = append(out, p.ID.String())
	}

	return out
}

func TestNewApp_StartsLoading(t *testing.T) {
	app := newTestApp(t, &testutils.MockFetcher{})

	assert.Equal(t, models.PhaseLoading, app.State().Phase())
	assert.Equal(t, pageLoading, app.CurrentPage())
	assert.Empty(t, app.footer.Status())
}

func TestLoadCatalog_Ready(t *testing.T) {
	app := settledApp(t, testutils.SampleProducts(), nil)

	require.Equal(t, models.PhaseReady, app.State().Phase())
	assert.Equal(t, pageReady, app.CurrentPage())
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(app))
	assert.Equal(t, 0, app.categoryBar.Active())
	assert.Equal(t, "3 of 3 products", app.footer.Status())
	assert.False(t, app.spinner.Running())
}

func TestLoadCatalog_FailureAndEmptyShowConnectivityMessage(t *testing.T) {
	for name, tc := range map[string]struct {
		products []catalog.Product
		err      error
	}{
		"network failure": {nil, errors.New("dial tcp: no route to host")},
		"zero products":   {[]catalog.Product{}, nil},
	} {
		t.Run(name, func(t *testing.T) {
			app := settledApp(t, tc.products, tc.err)

			assert.Equal(t, models.PhaseEmpty, app.State().Phase())
			assert.Equal(t, pageEmpty, app.CurrentPage())
			assert.Contains(t, app.emptyView.GetText(true), models.EmptyMessage)
		})
	}
}

func TestStartFetch_RunsOnceInBackground(t *testing.T) {
	fetcher := testutils.NewGatedFetcher(testutils.SampleProducts(), nil)
	app := newTestApp(t, fetcher)

	callbacks := make(chan func(), 1)
	app.queue = func(f func()) { callbacks <- f }

	app.StartFetch()
	app.StartFetch()

	assert.Equal(t, pageLoading, app.CurrentPage())

	fetcher.Release()

	select {
	case f := <-callbacks:
		f()
	case <-time.After(2 * time.Second):
		t.Fatal("fetch result was never queued")
	}

	assert.Equal(t, pageReady, app.CurrentPage())
	assert.Equal(t, 1, fetcher.Calls())
}

func TestLoadCatalog_DiscardedAfterStop(t *testing.T) {
	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(testutils.SampleProducts(), nil)

	app := newTestApp(t, fetcher)
	queued := false
	app.queue = func(func()) { queued = true }

	app.stopped.Store(true)
	app.loadCatalog()

	assert.False(t, queued)
	assert.Equal(t, models.PhaseLoading, app.State().Phase())
}

func TestInitialCategory(t *testing.T) {
	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(testutils.SampleProducts(), nil)

	app := newTestApp(t, fetcher)
	app.SetInitialCategory("electronics")
	app.loadCatalog()

	assert.Equal(t, "electronics", app.State().Active())
	assert.Equal(t, []string{"1", "3"}, visibleIDs(app))
	assert.Equal(t, "2 of 3 products", app.footer.Status())
}

func TestInitialCategory_UnknownIgnored(t *testing.T) {
	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(testutils.SampleProducts(), nil)

	app := newTestApp(t, fetcher)
	app.SetInitialCategory("garden")
	app.loadCatalog()

	assert.Equal(t, catalog.AllCategories, app.State().Active())
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(app))
}

func TestLoadCatalog_MistypedPassThroughFieldsReachReady(t *testing.T) {
	var products []catalog.Product
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"category":"electronics","price":"free","title":5}]`), &products))

	app := settledApp(t, products, nil)

	require.Equal(t, models.PhaseReady, app.State().Phase())
	assert.Equal(t, pageReady, app.CurrentPage())
	assert.Equal(t, []string{"1"}, visibleIDs(app))
	assert.Equal(t, "1 of 1 products", app.footer.Status())
}
