package components

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/theme"
	"github.com/devnullvoid/shoptui/internal/version"
)

// Header shows the application name and the catalog source.
type Header struct {
	*tview.TextView
}

// NewHeader creates the header line for source.
func NewHeader(source string) *Header {
	view := tview.NewTextView()
	view.SetTextAlign(tview.AlignCenter)
	view.SetDynamicColors(true)
	view.SetText(fmt.Sprintf("%s %s  %s",
		theme.Tag(theme.Colors.HeaderText, version.ProjectName),
		theme.Tag(theme.Colors.Secondary, version.GetVersionString()),
		theme.Tag(theme.Colors.Secondary, tview.Escape(source))))

	return &Header{TextView: view}
}
