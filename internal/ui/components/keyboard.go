package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/devnullvoid/shoptui/internal/keys"
	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// setupKeyboardHandlers configures global keyboard shortcuts.
func (a *App) setupKeyboardHandlers() {
	a.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	kb := a.config.KeyBindings

	if keys.Matches(event, kb.Quit) {
		a.Stop()
		return nil
	}

	// Categories can only change once the catalog is ready.
	if a.state.Phase() != models.PhaseReady {
		return event
	}

	switch {
	case keys.Matches(event, kb.NextCategory):
		a.stepCategory(1)
		return nil
	case keys.Matches(event, kb.PrevCategory):
		a.stepCategory(-1)
		return nil
	case keys.Matches(event, kb.ResetCategory):
		a.selectCategory(0)
		return nil
	}

	switch event.Key() {
	case tcell.KeyRight, tcell.KeyTab:
		a.stepCategory(1)
	case tcell.KeyLeft, tcell.KeyBacktab:
		a.stepCategory(-1)
	case tcell.KeyUp:
		a.productList.Move(-1)
	case tcell.KeyDown:
		a.productList.Move(1)
	case tcell.KeyRune:
		if !a.handleRune(event.Rune()) {
			return event
		}
	default:
		return event
	}

	return nil
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'l':
		a.stepCategory(1)
	case 'h':
		a.stepCategory(-1)
	case 'j':
		a.productList.Move(1)
	case 'k':
		a.productList.Move(-1)
	case '0':
		a.selectCategory(0)
	default:
		index := int(r - '1')
		if r < '1' || index >= catalog.CategoryCount() {
			return false
		}
		a.selectCategory(index)
	}

	return true
}

func (a *App) stepCategory(delta int) {
	if a.state.Step(delta) {
		a.refresh()
	}
}

func (a *App) selectCategory(index int) {
	if a.state.Select(index) {
		a.refresh()
	}
}
