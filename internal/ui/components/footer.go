package components

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/ui/theme"
)

// Footer shows key hints and, once ready, how many products are visible.
type Footer struct {
	*tview.TextView
	hints  string
	status string
}

var _ FooterComponent = (*Footer)(nil)

// NewFooter creates a footer with hints for the configured key bindings.
func NewFooter(kb config.KeyBindings) *Footer {
	view := tview.NewTextView()
	view.SetTextAlign(tview.AlignCenter)
	view.SetDynamicColors(true)

	f := &Footer{TextView: view}
	f.hints = fmt.Sprintf("%s Category  %s Reset  %s Scroll  %s Quit",
		f.key("←/→ "+kb.PrevCategory+"/"+kb.NextCategory),
		f.key(kb.ResetCategory+"/0"),
		f.key("↑/↓"),
		f.key(kb.Quit))
	f.updateDisplay()

	return f
}

func (f *Footer) key(text string) string {
	return theme.Tag(theme.Colors.HeaderText, tview.Escape(text)+":")
}

// SetCounts shows "visible of total products".
func (f *Footer) SetCounts(visible, total int) {
	f.status = fmt.Sprintf("%d of %d products", visible, total)
	f.updateDisplay()
}

// ClearCounts removes the product count.
func (f *Footer) ClearCounts() {
	f.status = ""
	f.updateDisplay()
}

// Status returns the count text currently displayed.
func (f *Footer) Status() string {
	return f.status
}

func (f *Footer) updateDisplay() {
	text := f.hints
	if f.status != "" {
		text = fmt.Sprintf("%s  %s", theme.Tag(theme.Colors.FooterText, f.status), text)
	}

	f.SetText(text)
}
