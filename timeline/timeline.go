// Package timeline provides time-bounded eased progress values, each
// driven by a caller-owned clock rather than wall-clock reads of its own.
package timeline

import (
	"time"

	"github.com/fogleman/ease"
)

// Curve maps a linear phase in [0,1] to an eased one. Eased values may
// leave [0,1] (OutBack overshoots before settling).
type Curve func(float64) float64

var (
	Linear   Curve = ease.Linear
	OutCubic Curve = ease.OutCubic
	InCubic  Curve = ease.InCubic
	OutBack  Curve = ease.OutBack
	InBack   Curve = ease.InBack
)

// Timeline interpolates From to To over Length, starting once Delay has
// elapsed on the caller's clock. The zero value stays at 0 forever-done.
type Timeline struct {
	Delay  time.Duration
	Length time.Duration
	Curve  Curve
	From   float64
	To     float64
}

// At returns the eased value at the given clock reading. The raw phase is
// clamped to [0,1]; the eased value is not, so overshooting curves render
// past their endpoints.
func (t Timeline) At(clock time.Duration) float64 {
	if clock < t.Delay {
		return t.From
	}
	if t.Length <= 0 || clock >= t.End() {
		return t.To
	}
	phase := float64(clock-t.Delay) / float64(t.Length)
	c := t.Curve
	if c == nil {
		c = Linear
	}
	return t.From + (t.To-t.From)*c(phase)
}

// End returns the clock reading at which the timeline reaches To.
// Non-positive lengths end at Delay.
func (t Timeline) End() time.Duration {
	if t.Length <= 0 {
		return t.Delay
	}
	return t.Delay + t.Length
}

// Done reports whether the timeline has reached its end value.
func (t Timeline) Done(clock time.Duration) bool {
	return clock >= t.End()
}

// Reverse returns a timeline running from the value this one has at clock
// back to this one's From, over length with curve. The reversal shares
// the original's clock, beginning at the moment it was taken.
func (t Timeline) Reverse(clock, length time.Duration, curve Curve) Timeline {
	return Timeline{
		Delay:  clock,
		Length: length,
		Curve:  curve,
		From:   t.At(clock),
		To:     t.From,
	}
}
