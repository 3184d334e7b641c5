// Package glint renders transient toast notifications over a Bubble Tea
// application. A Stage owns the live instances: the host model routes
// messages through it, composites its overlay on top of the rendered
// view, and toasts are presented either directly with Present or from
// anywhere in the process through the attached-program dispatcher (Show
// and friends).
package glint

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/styles"
	"github.com/glintui/glint/toast"
)

var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// Model is the toast stage. Create one with New, embed it in the host
// model, forward every message to Update and wrap the host view with
// Overlay.
type Model struct {
	theme   *styles.Theme
	onEvent func(Event)

	width  int
	height int

	toasts    []*entry
	ticking   bool
	lastFrame time.Time

	now func() time.Time
}

// entry pairs a live instance with its identity and the frame it was
// last drawn at, which the mouse hit-test reads.
type entry struct {
	id    int64
	toast *toast.Toast
	frame toast.Frame
}

// Option configures a stage.
type Option func(*Model)

// WithTheme overrides the default palette.
func WithTheme(th *styles.Theme) Option {
	return func(m *Model) { m.theme = th }
}

// WithOnEvent registers a lifecycle observer. It runs on the UI loop, so
// it must not block.
func WithOnEvent(fn func(Event)) Option {
	return func(m *Model) { m.onEvent = fn }
}

// New creates an empty stage.
func New(opts ...Option) Model {
	m := Model{
		theme: styles.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Active returns the number of live instances.
func (m Model) Active() int { return len(m.toasts) }

// Present allocates an identity for cfg and returns the command that
// inserts it, plus a handle for early programmatic dismissal. The call
// itself does nothing visible; the stage consumes the resulting message
// in Update, so presentation is non-blocking.
func Present(cfg toast.Config) (tea.Cmd, Handle) {
	id := nextID()
	return func() tea.Msg { return PresentMsg{ID: id, Config: cfg} }, Handle{id: id}
}

func (m Model) emit(ev Event) {
	if m.onEvent != nil {
		m.onEvent(ev)
	}
}

func (m Model) find(id int64) *entry {
	for _, e := range m.toasts {
		if e.id == id {
			return e
		}
	}
	return nil
}

// Event reports one lifecycle step of one instance.
type Event struct {
	Kind   EventKind
	ID     int64
	Config toast.Config
	Reason DismissReason // set on EventDismissed
}

// EventKind identifies a lifecycle step.
type EventKind string

const (
	EventPresented EventKind = "presented"
	EventSettled   EventKind = "settled"
	EventDismissed EventKind = "dismissed"
	EventRemoved   EventKind = "removed"
)

// DismissReason identifies which trigger began an exit.
type DismissReason string

const (
	ReasonTimeout DismissReason = "timeout"
	ReasonTap     DismissReason = "tap"
	ReasonHandle  DismissReason = "handle"
	ReasonForced  DismissReason = "forced"
)
