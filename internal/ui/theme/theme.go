// Package theme provides semantic colors for the storefront UI.
//
// Components never hardcode tcell colors; they read from Colors, which maps
// to standard ANSI colors by default so the terminal emulator's scheme shows
// through. A built-in palette can be selected by name and any single color
// overridden from the config file:
//
//	theme:
//	  name: "nord"
//	  colors:
//	    price: "#ebcb8b"
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/config"
)

// DefaultName is the palette used when none is configured.
const DefaultName = "default"

// Palette is the set of semantic colors used by the UI.
type Palette struct {
	Primary   tcell.Color // Product titles and body text
	Secondary tcell.Color // Labels and extra fields
	Accent    tcell.Color // Active category and spinner
	Price     tcell.Color
	Rating    tcell.Color
	Error     tcell.Color // Connectivity message

	Background tcell.Color
	Border     tcell.Color
	Selection  tcell.Color // Active category background
	HeaderText tcell.Color
	FooterText tcell.Color
	Title      tcell.Color
	Inverse    tcell.Color
}

// Colors is the active palette.
var Colors = defaultPalette()

func defaultPalette() Palette {
	return Palette{
		Primary:   tcell.ColorWhite,
		Secondary: tcell.ColorGray,
		Accent:    tcell.ColorAqua,
		Price:     tcell.ColorGreen,
		Rating:    tcell.ColorYellow,
		Error:     tcell.ColorRed,

		Background: tcell.ColorDefault,
		Border:     tcell.ColorGray,
		Selection:  tcell.ColorBlue,
		HeaderText: tcell.ColorYellow,
		FooterText: tcell.ColorWhite,
		Title:      tcell.ColorWhite,
		Inverse:    tcell.ColorBlack,
	}
}

// BuiltInThemes maps a theme name to color names keyed by palette slot.
var BuiltInThemes = map[string]map[string]string{
	DefaultName: {
		"primary":    "white",
		"secondary":  "gray",
		"accent":     "aqua",
		"price":      "green",
		"rating":     "yellow",
		"error":      "red",
		"background": "default",
		"border":     "gray",
		"selection":  "blue",
		"headertext": "yellow",
		"footertext": "white",
		"title":      "white",
		"inverse":    "black",
	},
	// Nord (https://www.nordtheme.com/docs/colors-and-palettes)
	"nord": {
		"primary":    "#d8dee9",
		"secondary":  "#81a1c1",
		"accent":     "#88c0d0",
		"price":      "#a3be8c",
		"rating":     "#ebcb8b",
		"error":      "#bf616a",
		"background": "#2e3440",
		"border":     "#4c566a",
		"selection":  "#434c5e",
		"headertext": "#88c0d0",
		"footertext": "#d8dee9",
		"title":      "#b48ead",
		"inverse":    "#2e3440",
	},
	// Gruvbox (https://github.com/morhetz/gruvbox)
	"gruvbox": {
		"primary":    "#ebdbb2",
		"secondary":  "#a89984",
		"accent":     "#fe8019",
		"price":      "#b8bb26",
		"rating":     "#fabd2f",
		"error":      "#fb4934",
		"background": "#282828",
		"border":     "#504945",
		"selection":  "#665c54",
		"headertext": "#fe8019",
		"footertext": "#ebdbb2",
		"title":      "#d3869b",
		"inverse":    "#282828",
	},
	// Dracula (https://draculatheme.com/contribute)
	"dracula": {
		"primary":    "#f8f8f2",
		"secondary":  "#6272a4",
		"accent":     "#bd93f9",
		"price":      "#50fa7b",
		"rating":     "#f1fa8c",
		"error":      "#ff5555",
		"background": "#282a36",
		"border":     "#44475a",
		"selection":  "#44475a",
		"headertext": "#ff79c6",
		"footertext": "#f8f8f2",
		"title":      "#8be9fd",
		"inverse":    "#282a36",
	},
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(BuiltInThemes))
	for name := range BuiltInThemes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Resolve merges the selected built-in theme with user overrides.
// An unknown name resolves to the default palette and is reported.
func Resolve(cfg *config.ThemeConfig) (map[string]string, error) {
	var err error

	base := BuiltInThemes[DefaultName]
	if cfg != nil && cfg.Name != "" {
		if t, ok := BuiltInThemes[cfg.Name]; ok {
			base = t
		} else {
			err = fmt.Errorf("unknown theme %q (available: %s)", cfg.Name, strings.Join(Names(), ", "))
		}
	}

	resolved := make(map[string]string, len(base))
	for k, v := range base {
		resolved[k] = v
	}

	if cfg != nil {
		for k, v := range cfg.Colors {
			resolved[strings.ToLower(k)] = v
		}
	}

	return resolved, err
}

// Apply resolves cfg into Colors and pushes it into tview.Styles.
// Unknown color slots are ignored.
func Apply(cfg *config.ThemeConfig) error {
	resolved, err := Resolve(cfg)

	p := defaultPalette()
	slots := map[string]*tcell.Color{
		"primary":    &p.Primary,
		"secondary":  &p.Secondary,
		"accent":     &p.Accent,
		"price":      &p.Price,
		"rating":     &p.Rating,
		"error":      &p.Error,
		"background": &p.Background,
		"border":     &p.Border,
		"selection":  &p.Selection,
		"headertext": &p.HeaderText,
		"footertext": &p.FooterText,
		"title":      &p.Title,
		"inverse":    &p.Inverse,
	}

	for key, val := range resolved {
		if slot, ok := slots[key]; ok {
			*slot = parseColor(val)
		}
	}

	Colors = p
	applyToTview()

	return err
}

func applyToTview() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    Colors.Background,
		ContrastBackgroundColor:     Colors.Selection,
		MoreContrastBackgroundColor: Colors.Selection,
		BorderColor:                 Colors.Border,
		TitleColor:                  Colors.Title,
		GraphicsColor:               Colors.Accent,
		PrimaryTextColor:            Colors.Primary,
		SecondaryTextColor:          Colors.Secondary,
		TertiaryTextColor:           Colors.Accent,
		InverseTextColor:            Colors.Inverse,
		ContrastSecondaryTextColor:  Colors.Secondary,
	}
}

// ColorToTag returns a tview color tag string for a tcell.Color.
func ColorToTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "default"
	}

	for _, named := range ansiNames {
		if named.color == c {
			return named.name
		}
	}

	return fmt.Sprintf("#%06x", c.Hex())
}

// Tag wraps text in a tview color tag for c.
func Tag(c tcell.Color, text string) string {
	return "[" + ColorToTag(c) + "]" + text + "[-]"
}

var ansiNames = []struct {
	name  string
	color tcell.Color
}{
	{"black", tcell.ColorBlack},
	{"maroon", tcell.ColorMaroon},
	{"green", tcell.ColorGreen},
	{"olive", tcell.ColorOlive},
	{"navy", tcell.ColorNavy},
	{"purple", tcell.ColorPurple},
	{"teal", tcell.ColorTeal},
	{"silver", tcell.ColorSilver},
	{"gray", tcell.ColorGray},
	{"red", tcell.ColorRed},
	{"lime", tcell.ColorLime},
	{"yellow", tcell.ColorYellow},
	{"blue", tcell.ColorBlue},
	{"fuchsia", tcell.ColorFuchsia},
	{"aqua", tcell.ColorAqua},
	{"white", tcell.ColorWhite},
}

func parseColor(s string) tcell.Color {
	if strings.EqualFold(s, "default") {
		return tcell.ColorDefault
	}

	return tcell.GetColor(s)
}
