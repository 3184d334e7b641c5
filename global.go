package glint

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/toast"
)

// Sender delivers messages into a running Bubble Tea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(tea.Msg)
}

var (
	dispatchMu sync.RWMutex
	dispatcher Sender
)

// Attach registers the running program as the target for Show and for
// handle dismissals, making toasts reachable from any goroutine. Call it
// once the program is running; everything tolerates it being unset.
func Attach(s Sender) {
	dispatchMu.Lock()
	dispatcher = s
	dispatchMu.Unlock()
}

// Detach clears the dispatch target. Call it when the program quits so
// late Show calls degrade to no-ops instead of sending into a dead
// program.
func Detach() {
	dispatchMu.Lock()
	dispatcher = nil
	dispatchMu.Unlock()
}

func send(msg tea.Msg) bool {
	dispatchMu.RLock()
	s := dispatcher
	dispatchMu.RUnlock()
	if s == nil {
		return false
	}
	s.Send(msg)
	return true
}

// Show presents a toast on the attached program's stage. It is safe from
// any goroutine and never blocks the caller beyond the send itself. With
// no program attached it is a silent no-op and returns the zero handle.
func Show(cfg toast.Config) Handle {
	id := nextID()
	if !send(PresentMsg{ID: id, Config: cfg}) {
		return Handle{}
	}
	return Handle{id: id}
}

// Successf shows a success toast with a formatted message.
func Successf(format string, args ...any) Handle {
	return Show(toast.New(fmt.Sprintf(format, args...)))
}

// Failuref shows a failure toast with a formatted message.
func Failuref(format string, args ...any) Handle {
	return Show(toast.New(fmt.Sprintf(format, args...), toast.WithKind(toast.KindFailure)))
}

// Warnf shows a warning toast with a formatted message.
func Warnf(format string, args ...any) Handle {
	return Show(toast.New(fmt.Sprintf(format, args...), toast.WithKind(toast.KindWarning)))
}

// Infof shows an info toast with a formatted message.
func Infof(format string, args ...any) Handle {
	return Show(toast.New(fmt.Sprintf(format, args...), toast.WithKind(toast.KindInfo)))
}
