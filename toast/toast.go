// Package toast implements the lifecycle and animation choreography of a
// single notification instance. A toast owns four timelines (slide, fade,
// scale, countdown) driven by one logical clock that the surface advances
// frame by frame; the package renders but never schedules, so instances
// are fully deterministic under test.
package toast

import (
	"time"

	"github.com/glintui/glint/timeline"
)

// State identifies where an instance is in its lifecycle.
type State int

const (
	StateEntering State = iota
	StateVisible
	StateLeaving
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateVisible:
		return "visible"
	case StateLeaving:
		return "leaving"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Entrance and exit schedule. All four entrance lanes run against the
// instance clock starting at zero; their start order is fixed but their
// completion order is whatever the delay+length arithmetic implies.
const (
	slideInLen    = 400 * time.Millisecond
	fadeInLen     = 300 * time.Millisecond
	scaleDelay    = 100 * time.Millisecond
	scaleLen      = 200 * time.Millisecond
	progressDelay = 200 * time.Millisecond

	slideOutLen = 300 * time.Millisecond
	fadeOutLen  = 200 * time.Millisecond

	// slideTravel is the entrance offset as a fraction of the surface
	// extent, directed beyond the anchored edge.
	slideTravel = 1.2

	scaleFrom = 0.8
)

// EntranceDuration is when the entrance choreography settles. The slide
// lane is the slowest, so it defines the join point.
const EntranceDuration = slideInLen

// RemovalGrace bounds the exit animation. A fallback timer armed this
// long past the display deadline force-removes an instance whose exit
// never signalled completion.
const RemovalGrace = EntranceDuration

// Toast is one live notification instance.
type Toast struct {
	Config Config

	state State
	clock time.Duration

	slide    timeline.Timeline
	fade     timeline.Timeline
	scale    timeline.Timeline
	progress timeline.Timeline

	settled       bool
	callbackFired bool
}

// Start creates an instance at clock zero with the entrance schedule
// armed. The config is normalized first.
func Start(cfg Config) *Toast {
	cfg = cfg.Normalized()
	return &Toast{
		Config: cfg,
		slide: timeline.Timeline{
			Length: slideInLen,
			Curve:  timeline.OutBack,
			From:   slideTravel,
			To:     0,
		},
		fade: timeline.Timeline{
			Length: fadeInLen,
			Curve:  timeline.OutCubic,
			From:   0,
			To:     1,
		},
		scale: timeline.Timeline{
			Delay:  scaleDelay,
			Length: scaleLen,
			Curve:  timeline.OutBack,
			From:   scaleFrom,
			To:     1,
		},
		progress: timeline.Timeline{
			Delay:  progressDelay,
			Length: cfg.Duration,
			Curve:  timeline.Linear,
			From:   0,
			To:     1,
		},
	}
}

// State returns the current lifecycle state.
func (t *Toast) State() State { return t.state }

// Clock returns the instance's logical clock.
func (t *Toast) Clock() time.Duration { return t.clock }

// Settled reports whether the entrance ever completed. A toast dismissed
// mid-entrance never settles.
func (t *Toast) Settled() bool { return t.settled }

// Offset is the current slide offset as a fraction of the surface
// extent, 0 once settled.
func (t *Toast) Offset() float64 { return t.slide.At(t.clock) }

// Opacity is the current fade value in [0,1].
func (t *Toast) Opacity() float64 { return t.fade.At(t.clock) }

// Scale is the current width factor, 1 once settled.
func (t *Toast) Scale() float64 { return t.scale.At(t.clock) }

// Remaining is the countdown fraction still to run, 1 before the
// countdown lane starts.
func (t *Toast) Remaining() float64 { return 1 - t.progress.At(t.clock) }

// Deadline is the clock reading at which display time is up and the exit
// begins. Zero-duration toasts leave as soon as their entrance settles.
func (t *Toast) Deadline() time.Duration {
	if t.Config.Duration <= 0 {
		return EntranceDuration
	}
	return t.Config.Duration
}

// Advance moves the clock forward and applies whatever transitions the
// new reading implies. Removed instances ignore it.
func (t *Toast) Advance(delta time.Duration) {
	if t.state == StateRemoved {
		return
	}
	if delta > 0 {
		t.clock += delta
	}

	if t.state == StateEntering && t.slide.Done(t.clock) && t.fade.Done(t.clock) {
		t.state = StateVisible
		t.settled = true
	}

	if (t.state == StateEntering || t.state == StateVisible) && t.clock >= t.Deadline() {
		t.Dismiss()
	}

	if t.state == StateLeaving && t.slide.Done(t.clock) && t.fade.Done(t.clock) {
		t.remove()
	}
}

// Dismiss begins the exit: slide and fade reverse from their current
// values, and the instance is removed once both reversals finish.
// Calls while already leaving or removed are no-ops.
func (t *Toast) Dismiss() {
	if t.state == StateLeaving || t.state == StateRemoved {
		return
	}
	t.slide = t.slide.Reverse(t.clock, slideOutLen, timeline.InBack)
	t.fade = t.fade.Reverse(t.clock, fadeOutLen, timeline.InCubic)
	// Scale holds whatever it reached; the countdown keeps running but
	// no longer matters.
	held := t.scale.At(t.clock)
	t.scale = timeline.Timeline{From: held, To: held}
	t.state = StateLeaving
}

// ForceRemove ends the instance regardless of animation state. The
// fallback timer uses it when an exit never signalled completion.
func (t *Toast) ForceRemove() {
	if t.state == StateRemoved {
		return
	}
	t.remove()
}

func (t *Toast) remove() {
	t.state = StateRemoved
	t.fireCallback()
}

// fireCallback guards the completion callback so it runs exactly once no
// matter which removal path gets there first.
func (t *Toast) fireCallback() {
	if t.callbackFired {
		return
	}
	t.callbackFired = true
	if t.Config.OnDismiss != nil {
		t.Config.OnDismiss()
	}
}
