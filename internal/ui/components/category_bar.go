package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/theme"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// CategoryBar shows every category label with the active one highlighted.
type CategoryBar struct {
	*tview.TextView
	active int
}

var _ CategoryBarComponent = (*CategoryBar)(nil)

// NewCategoryBar creates a bar with "All" active.
func NewCategoryBar() *CategoryBar {
	view := tview.NewTextView()
	view.SetDynamicColors(true)
	view.SetRegions(true)
	view.SetWrap(false)

	bar := &CategoryBar{TextView: view}
	bar.SetActive(0)

	return bar
}

// SetActive highlights the category at index.
func (b *CategoryBar) SetActive(index int) {
	b.active = index

	labels := catalog.Categories()
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		text := fmt.Sprintf(" %d %s ", i+1, tview.Escape(label))
		if i == index {
			parts = append(parts, fmt.Sprintf("[%s:%s:b]%s[-:-:-]",
				theme.ColorToTag(theme.Colors.Inverse), theme.ColorToTag(theme.Colors.Selection), text))
			continue
		}
		parts = append(parts, theme.Tag(theme.Colors.Secondary, text))
	}

	b.SetText(strings.Join(parts, "│"))
}

// Active returns the highlighted index.
func (b *CategoryBar) Active() int {
	return b.active
}
