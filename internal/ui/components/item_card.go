package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/theme"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// ItemCardRegion returns the tview region ID that keys the card at position
// index in the list. The position keeps regions distinct when a catalog
// repeats an ID. Characters tview does not accept in region IDs become
// underscores.
func ItemCardRegion(index int, id catalog.ProductID) string {
	return fmt.Sprintf("product-%d-", index) + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("_,;: -.", r):
			return r
		default:
			return '_'
		}
	}, id.String())
}

// ItemCard renders the product at position index as tagged text wrapped in
// its region.
func ItemCard(index int, p catalog.Product) string {
	var b strings.Builder

	title := p.Title
	if title == "" {
		title = "(untitled)"
	}

	fmt.Fprintf(&b, "[\"%s\"]", ItemCardRegion(index, p.ID))
	fmt.Fprintf(&b, "%s  %s\n",
		theme.Tag(theme.Colors.Primary, tview.Escape(title)),
		theme.Tag(theme.Colors.Price, p.FormattedPrice()))

	meta := []string{theme.Tag(theme.Colors.Secondary, tview.Escape(p.Category))}
	if p.Rating != nil {
		meta = append(meta, theme.Tag(theme.Colors.Rating, fmt.Sprintf("★ %.1f (%d)", p.Rating.Rate, p.Rating.Count)))
	}
	meta = append(meta, theme.Tag(theme.Colors.Secondary, "#"+tview.Escape(p.ID.String())))
	b.WriteString("  " + strings.Join(meta, "  ") + "\n")

	if p.Description != "" {
		b.WriteString("  " + tview.Escape(p.Description) + "\n")
	}

	for _, field := range p.ExtraFields() {
		fmt.Fprintf(&b, "  %s %s\n",
			theme.Tag(theme.Colors.Secondary, tview.Escape(field.Name)+":"),
			tview.Escape(field.Value))
	}

	b.WriteString(`[""]`)

	return b.String()
}
