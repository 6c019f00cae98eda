package components

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/devnullvoid/shoptui/internal/ui/theme"
)

// SpinnerInterval is the time between animation frames.
const SpinnerInterval = 100 * time.Millisecond

// SpinnerFrames are the braille glyphs cycled by the spinner.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is the loading indicator. It takes no inputs: its only job is
// to show that the catalog is still on its way.
type Spinner struct {
	*tview.TextView

	mu    sync.Mutex
	frame int
	stop  chan struct{}
}

var _ SpinnerComponent = (*Spinner)(nil)

// NewSpinner creates a stopped spinner showing its first frame.
func NewSpinner() *Spinner {
	view := tview.NewTextView()
	view.SetTextAlign(tview.AlignCenter)
	view.SetDynamicColors(true)
	view.SetBackgroundColor(tcell.ColorDefault)

	s := &Spinner{TextView: view}
	s.render()

	return s
}

// Start animates the spinner until Stop is called. Frames are drawn via
// queue, which must hand the callback to the UI goroutine.
func (s *Spinner) Start(queue func(func())) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(SpinnerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				queue(s.Advance)
			}
		}
	}()
}

// Stop halts the animation. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Running reports whether the animation goroutine is active.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stop != nil
}

// Advance shows the next frame. Must run on the UI goroutine.
func (s *Spinner) Advance() {
	s.mu.Lock()
	s.frame = (s.frame + 1) % len(SpinnerFrames)
	s.mu.Unlock()

	s.render()
}

// Frame returns the glyph currently displayed.
func (s *Spinner) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SpinnerFrames[s.frame]
}

func (s *Spinner) render() {
	s.SetText(theme.Tag(theme.Colors.Accent, s.Frame()))
}
