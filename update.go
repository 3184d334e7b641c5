package glint

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/toast"
)

// Update routes stage messages. Hosts forward every message here;
// anything the stage does not recognize is ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case PresentMsg:
		return m.present(msg)
	case DismissMsg:
		return m.dismiss(msg.ID, ReasonHandle)
	case tea.MouseMsg:
		return m.click(msg)
	case frameMsg:
		return m.frame(time.Time(msg))
	case forceRemoveMsg:
		return m.forceRemove(msg.id)
	}
	return m, nil
}

func (m Model) present(msg PresentMsg) (Model, tea.Cmd) {
	if msg.ID == 0 {
		msg.ID = nextID()
	}
	tst := toast.Start(msg.Config)
	e := &entry{id: msg.ID, toast: tst}
	m.toasts = append(m.toasts, e)
	m.emit(Event{Kind: EventPresented, ID: e.id, Config: tst.Config})

	cmds := []tea.Cmd{forceRemoveCmd(e.id, tst.Deadline()+toast.RemovalGrace)}
	if !m.ticking {
		m.ticking = true
		m.lastFrame = m.now()
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}

// frame advances every live instance by the measured elapsed time, so a
// delayed tick fast-forwards instead of stretching the choreography.
func (m Model) frame(now time.Time) (Model, tea.Cmd) {
	if !m.ticking {
		return m, nil // stale tick from a pump that already stopped
	}
	delta := now.Sub(m.lastFrame)
	if delta < 0 {
		delta = 0
	}
	m.lastFrame = now

	for _, e := range m.toasts {
		wasState := e.toast.State()
		wasSettled := e.toast.Settled()
		e.toast.Advance(delta)
		st := e.toast.State()
		if !wasSettled && e.toast.Settled() {
			m.emit(Event{Kind: EventSettled, ID: e.id, Config: e.toast.Config})
		}
		// Only the machine's own deadline moves an instance into Leaving
		// here; explicit dismissals report their reason at their own
		// call sites.
		if wasState != toast.StateLeaving && st == toast.StateLeaving {
			m.emit(Event{Kind: EventDismissed, ID: e.id, Config: e.toast.Config, Reason: ReasonTimeout})
		}
		if wasState != toast.StateRemoved && st == toast.StateRemoved {
			m.emit(Event{Kind: EventRemoved, ID: e.id, Config: e.toast.Config})
		}
	}
	m.toasts = sweep(m.toasts)

	if len(m.toasts) == 0 {
		m.ticking = false
		return m, nil
	}
	return m, frameCmd()
}

func (m Model) dismiss(id int64, reason DismissReason) (Model, tea.Cmd) {
	e := m.find(id)
	if e == nil {
		return m, nil
	}
	st := e.toast.State()
	if st == toast.StateLeaving || st == toast.StateRemoved {
		return m, nil
	}
	e.toast.Dismiss()
	m.emit(Event{Kind: EventDismissed, ID: e.id, Config: e.toast.Config, Reason: reason})
	return m, nil
}

// click hit-tests a left press against the frames drawn by the last
// Overlay call, newest instance first. The topmost hit swallows the
// press either way; non-dismissible toasts just ignore it.
func (m Model) click(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i := len(m.toasts) - 1; i >= 0; i-- {
		e := m.toasts[i]
		if !e.frame.Contains(msg.X, msg.Y) {
			continue
		}
		if !e.toast.Config.Dismissible {
			return m, nil
		}
		return m.dismiss(e.id, ReasonTap)
	}
	return m, nil
}

func (m Model) forceRemove(id int64) (Model, tea.Cmd) {
	e := m.find(id)
	if e == nil {
		return m, nil // already removed through the normal exit
	}
	st := e.toast.State()
	e.toast.ForceRemove()
	if st == toast.StateEntering || st == toast.StateVisible {
		m.emit(Event{Kind: EventDismissed, ID: e.id, Config: e.toast.Config, Reason: ReasonForced})
	}
	m.emit(Event{Kind: EventRemoved, ID: e.id, Config: e.toast.Config})
	m.toasts = sweep(m.toasts)
	return m, nil
}

func sweep(entries []*entry) []*entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.toast.State() != toast.StateRemoved {
			kept = append(kept, e)
		}
	}
	return kept
}
