package components

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/devnullvoid/shoptui/pkg/catalog"
	"github.com/devnullvoid/shoptui/pkg/catalog/testutils"
)

func TestHandleKey_CategoryNavigation(t *testing.T) {
	app := settledApp(t, testutils.SampleProducts(), nil)

	tests := []struct {
		name     string
		event    *tcell.EventKey
		active   string
		expected []string
	}{
		{"right moves to electronics", key(tcell.KeyRight), "electronics", []string{"1", "3"}},
		{"tab moves to jewelery", key(tcell.KeyTab), "jewelery", []string{"2"}},
		{"l moves to men's clothing", runeKey('l'), "men's clothing", []string{}},
		{"n moves to women's clothing", runeKey('n'), "women's clothing", []string{}},
		{"right wraps to All", key(tcell.KeyRight), catalog.AllCategories, []string{"1", "2", "3"}},
		{"left wraps to women's clothing", key(tcell.KeyLeft), "women's clothing", []string{}},
		{"digit jumps", runeKey('2'), "electronics", []string{"1", "3"}},
		{"p steps back", runeKey('p'), catalog.AllCategories, []string{"1", "2", "3"}},
		{"3 jumps to jewelery", runeKey('3'), "jewelery", []string{"2"}},
		{"0 resets", runeKey('0'), catalog.AllCategories, []string{"1", "2", "3"}},
		{"h steps back", runeKey('h'), "women's clothing", []string{}},
		{"a resets", runeKey('a'), catalog.AllCategories, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		assert.Nil(t, app.handleKey(tt.event), tt.name)
		assert.Equal(t, tt.active, app.State().Active(), tt.name)
		assert.Equal(t, tt.expected, visibleIDs(app), tt.name)
		assert.Equal(t, app.State().Cursor(), app.categoryBar.Active(), tt.name)
	}
}

func TestHandleKey_UnhandledPassThrough(t *testing.T) {
	app := settledApp(t, testutils.SampleProducts(), nil)

	event := runeKey('9')
	assert.Same(t, event, app.handleKey(event))
	assert.Equal(t, catalog.AllCategories, app.State().Active())

	pgDn := key(tcell.KeyPgDn)
	assert.Same(t, pgDn, app.handleKey(pgDn))
}

func TestHandleKey_IgnoredUntilReady(t *testing.T) {
	app := newTestApp(t, &testutils.MockFetcher{})

	event := key(tcell.KeyRight)
	assert.Same(t, event, app.handleKey(event))
	assert.Equal(t, 0, app.State().Cursor())

	empty := settledApp(t, nil, nil)
	assert.Same(t, event, empty.handleKey(event))
	assert.Equal(t, pageEmpty, empty.CurrentPage())
}

func TestHandleKey_Quit(t *testing.T) {
	app := newTestApp(t, &testutils.MockFetcher{})

	assert.Nil(t, app.handleKey(runeKey('q')))
}

func TestHandleKey_ScrollProducts(t *testing.T) {
	app := settledApp(t, testutils.SampleProducts(), nil)

	selected := func() string {
		p, ok := app.productList.Selected()
		assert.True(t, ok)
		return p.ID.String()
	}

	assert.Equal(t, "1", selected())

	assert.Nil(t, app.handleKey(key(tcell.KeyDown)))
	assert.Equal(t, "2", selected())

	app.handleKey(runeKey('j'))
	app.handleKey(runeKey('j'))
	assert.Equal(t, "3", selected(), "cursor clamps at the last product")

	app.handleKey(key(tcell.KeyUp))
	app.handleKey(runeKey('k'))
	app.handleKey(runeKey('k'))
	assert.Equal(t, "1", selected())

	// Changing category resets the product cursor.
	app.handleKey(key(tcell.KeyDown))
	app.handleKey(key(tcell.KeyRight))
	assert.Equal(t, "1", selected())
}
