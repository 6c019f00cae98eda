// Package keys parses configurable key specifications into tcell values.
package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Parse converts a key specification like "Ctrl+N", "F5" or "q" to tcell
// values. It returns the key, optional rune, and modifier mask.
func Parse(spec string) (tcell.Key, rune, tcell.ModMask, error) {
	if strings.TrimSpace(spec) == "" {
		return 0, 0, 0, fmt.Errorf("empty key specification")
	}

	// "+" on its own (or as the last segment of "Ctrl++") is the plus key.
	parts := strings.Split(spec, "+")
	if strings.HasSuffix(spec, "+") {
		parts = append(strings.Split(strings.TrimSuffix(spec, "+"), "+"), "+")
		if parts[len(parts)-2] == "" {
			parts = append(parts[:len(parts)-2], "+")
		}
	}

	base := strings.TrimSpace(parts[len(parts)-1])
	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mods |= tcell.ModCtrl
		case "alt", "opt", "option":
			mods |= tcell.ModAlt
		case "shift":
			mods |= tcell.ModShift
		case "meta", "cmd", "super":
			mods |= tcell.ModMeta
		default:
			return 0, 0, 0, fmt.Errorf("unknown modifier %q", p)
		}
	}

	switch strings.ToUpper(base) {
	case "TAB":
		if mods&tcell.ModShift != 0 {
			return tcell.KeyBacktab, 0, mods &^ tcell.ModShift, nil
		}
		return tcell.KeyTab, 0, mods, nil
	case "BACKTAB":
		return tcell.KeyBacktab, 0, mods, nil
	case "ENTER", "RETURN":
		return tcell.KeyEnter, 0, mods, nil
	case "ESC", "ESCAPE":
		return tcell.KeyEsc, 0, mods, nil
	case "SPACE":
		return tcell.KeyRune, ' ', mods, nil
	case "UP":
		return tcell.KeyUp, 0, mods, nil
	case "DOWN":
		return tcell.KeyDown, 0, mods, nil
	case "LEFT":
		return tcell.KeyLeft, 0, mods, nil
	case "RIGHT":
		return tcell.KeyRight, 0, mods, nil
	case "HOME":
		return tcell.KeyHome, 0, mods, nil
	case "END":
		return tcell.KeyEnd, 0, mods, nil
	}

	upper := strings.ToUpper(base)
	if len(upper) > 1 && strings.HasPrefix(upper, "F") {
		if n, err := strconv.Atoi(upper[1:]); err == nil && n >= 1 && n <= 12 {
			return tcell.KeyF1 + tcell.Key(n-1), 0, mods, nil
		}
	}

	if runes := []rune(base); len(runes) == 1 {
		// Shift cannot be reliably detected for letters in terminals, so
		// letters always match case-insensitively without the Shift bit.
		return tcell.KeyRune, unicode.ToLower(runes[0]), mods &^ tcell.ModShift, nil
	}

	return 0, 0, 0, fmt.Errorf("unknown key %q", base)
}

// Validate returns an error if the key specification is not recognized.
func Validate(spec string) error {
	_, _, _, err := Parse(spec)
	return err
}

// CanonicalID returns a unique identifier for a parsed key combination.
func CanonicalID(key tcell.Key, r rune, mod tcell.ModMask) string {
	if key == tcell.KeyRune {
		r = unicode.ToLower(r)
	}
	return fmt.Sprintf("%d:%d:%d", key, r, mod)
}

// IsReserved reports whether the combination drives built-in navigation:
// arrows, Tab/Backtab and Home/End move between categories and products,
// digits 0-9 jump to a category, and Ctrl+C always quits.
func IsReserved(key tcell.Key, r rune, mod tcell.ModMask) bool {
	if mod == 0 {
		switch key {
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
			tcell.KeyTab, tcell.KeyBacktab, tcell.KeyHome, tcell.KeyEnd,
			tcell.KeyEnter, tcell.KeyEsc:
			return true
		case tcell.KeyRune:
			if r >= '0' && r <= '9' {
				return true
			}
		}
	}

	return mod == tcell.ModCtrl && key == tcell.KeyRune && unicode.ToLower(r) == 'c'
}

// Matches reports whether ev is the key described by spec. Invalid specs
// never match.
func Matches(ev *tcell.EventKey, spec string) bool {
	key, r, mod, err := Parse(spec)
	if err != nil {
		return false
	}

	evMod := ev.Modifiers() &^ tcell.ModShift

	// Terminals deliver Ctrl+letter as a control key rather than a rune.
	if key == tcell.KeyRune && mod&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		if ev.Key() == CtrlKeyForRune(r) {
			return evMod|tcell.ModCtrl == mod
		}
	}

	if ev.Key() != key {
		return false
	}
	if key == tcell.KeyRune {
		return unicode.ToLower(ev.Rune()) == r && evMod == mod
	}
	return evMod == mod&^tcell.ModShift
}

// CtrlKeyForRune maps a letter rune to its tcell KeyCtrlX value. Runes
// outside a-z map to tcell.KeyRune.
func CtrlKeyForRune(r rune) tcell.Key {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return tcell.KeyRune
	}
	return tcell.KeyCtrlA + tcell.Key(r-'a')
}
