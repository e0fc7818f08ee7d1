package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultDebounceWindow = 250 * time.Millisecond

// DebouncedQueryMsg carries a search value whose input stayed quiet for the
// debounce window. Gen identifies the keystroke that scheduled it; Settle
// rejects messages whose generation was superseded by a later change.
type DebouncedQueryMsg struct {
	Gen   int
	Value string
}

// Debouncer delays propagation of a changing search string until it has been
// stable for the window. Each Change supersedes any pending emission; Cancel
// drops whatever is still in flight (used on screen teardown). The initial
// settled value is the empty string, so no query fires before input settles.
type Debouncer struct {
	window time.Duration
	gen    int
	value  string
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window}
}

// Value returns the last settled value.
func (d *Debouncer) Value() string {
	if d == nil {
		return ""
	}
	return d.value
}

// Change schedules an emission of v after the window. The returned command
// sleeps for the full window, so the message can never arrive early.
func (d *Debouncer) Change(v string) tea.Cmd {
	d.gen++
	gen := d.gen
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return DebouncedQueryMsg{Gen: gen, Value: v}
	})
}

// Settle applies msg, reporting true and updating Value only when msg is the
// most recently scheduled emission. Superseded and cancelled emissions are
// dropped.
func (d *Debouncer) Settle(msg DebouncedQueryMsg) bool {
	if msg.Gen != d.gen {
		return false
	}
	d.value = msg.Value
	return true
}

// Cancel invalidates any in-flight emission.
func (d *Debouncer) Cancel() {
	d.gen++
}
