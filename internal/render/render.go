// Package render writes the product list as plain text for non-interactive
// output such as pipes and CI logs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// LoadingGlyph stands in for the animated spinner.
const LoadingGlyph = "⠋"

// Text returns the view for the state's current phase, without a trailing
// newline.
func Text(state *models.ViewState) string {
	switch state.Phase() {
	case models.PhaseLoading:
		return LoadingGlyph
	case models.PhaseEmpty:
		return models.EmptyMessage
	default:
		return ready(state)
	}
}

// Render writes Text(state) followed by a newline.
func Render(w io.Writer, state *models.ViewState) error {
	_, err := fmt.Fprintln(w, Text(state))
	return err
}

func ready(state *models.ViewState) string {
	var b strings.Builder

	b.WriteString(CategoryLine(state.Cursor()))
	b.WriteString("\n")

	visible := state.Visible()
	for _, p := range visible {
		b.WriteString("\n")
		b.WriteString(Card(p))
	}

	if len(visible) == 0 {
		fmt.Fprintf(&b, "\nNo products in %s.\n", state.Active())
	}

	fmt.Fprintf(&b, "\n%d of %d products", len(visible), len(state.Catalog()))

	return b.String()
}

// CategoryLine lists every category with the active one in brackets.
func CategoryLine(active int) string {
	labels := catalog.Categories()
	parts := make([]string, len(labels))

	for i, label := range labels {
		if i == active {
			parts[i] = "[" + label + "]"
			continue
		}
		parts[i] = label
	}

	return strings.Join(parts, "  ")
}

// Card renders one product, ending with a newline.
func Card(p catalog.Product) string {
	var b strings.Builder

	title := p.Title
	if title == "" {
		title = "(untitled)"
	}

	fmt.Fprintf(&b, "#%s %s  %s\n", p.ID, title, p.FormattedPrice())

	meta := p.Category
	if p.Rating != nil {
		meta += fmt.Sprintf("  ★ %.1f (%d)", p.Rating.Rate, p.Rating.Count)
	}
	fmt.Fprintf(&b, "    %s\n", meta)

	if p.Description != "" {
		fmt.Fprintf(&b, "    %s\n", p.Description)
	}

	for _, field := range p.ExtraFields() {
		fmt.Fprintf(&b, "    %s: %s\n", field.Name, field.Value)
	}

	return b.String()
}
