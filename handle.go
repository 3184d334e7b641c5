package glint

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies a presented toast for early programmatic dismissal.
// It stays valid after the toast is gone; dismissing then is a no-op.
// The zero Handle is inert.
type Handle struct {
	id int64
}

// Dismiss asks the toast's stage to begin its exit, dispatching through
// the attached program. It is safe from any goroutine, but from inside a
// Bubble Tea Update return DismissCmd instead: Send from the update loop
// can deadlock the program.
func (h Handle) Dismiss() {
	if h.id == 0 {
		return
	}
	send(DismissMsg{ID: h.id})
}

// DismissCmd is the command form of Dismiss for hosts that hold the
// handle inside their own model.
func (h Handle) DismissCmd() tea.Cmd {
	if h.id == 0 {
		return nil
	}
	id := h.id
	return func() tea.Msg { return DismissMsg{ID: id} }
}
