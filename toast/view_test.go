package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/glintui/glint/styles"
)

func settled(cfg Config) *Toast {
	tst := Start(cfg)
	advanceTo(tst, 600*time.Millisecond)
	return tst
}

func TestRenderSettledGeometry(t *testing.T) {
	th := styles.Default()
	tst := settled(New("saved", WithDuration(time.Hour)))

	f := tst.Render(th, 80, 24)
	if f.Width != DefaultMaxWidth {
		t.Errorf("settled width = %d, want %d", f.Width, DefaultMaxWidth)
	}
	// message row + countdown row + two border rows
	if f.Height != 4 {
		t.Errorf("height = %d, want 4", f.Height)
	}
	if want := (80 - DefaultMaxWidth) / 2; f.Col != want {
		t.Errorf("col = %d, want centered at %d", f.Col, want)
	}
	if want := 24 - edgeInset - f.Height; f.Row != want {
		t.Errorf("row = %d, want anchored at %d", f.Row, want)
	}

	for i, line := range strings.Split(f.Content, "\n") {
		if w := ansi.StringWidth(ansi.Strip(line)); w != f.Width {
			t.Errorf("line %d width = %d, want %d", i, w, f.Width)
		}
	}
	if !strings.Contains(ansi.Strip(f.Content), "saved") {
		t.Error("rendered box does not contain the message")
	}
}

func TestEntranceDirection(t *testing.T) {
	th := styles.Default()

	top := Start(New("x", WithPosition(PositionTop)))
	if f := top.Render(th, 80, 24); f.Row >= 0 {
		t.Errorf("top toast starts at row %d, want above the surface", f.Row)
	}

	bottom := Start(New("x"))
	if f := bottom.Render(th, 80, 24); f.Row < 24 {
		t.Errorf("bottom toast starts at row %d, want below the surface", f.Row)
	}
}

func TestSettledRowByPosition(t *testing.T) {
	th := styles.Default()

	top := settled(New("x", WithPosition(PositionTop)))
	if f := top.Render(th, 80, 24); f.Row != edgeInset {
		t.Errorf("settled top row = %d, want %d", f.Row, edgeInset)
	}

	bottom := settled(New("x"))
	f := bottom.Render(th, 80, 24)
	if want := 24 - edgeInset - f.Height; f.Row != want {
		t.Errorf("settled bottom row = %d, want %d", f.Row, want)
	}
}

func TestScaleNarrowsBox(t *testing.T) {
	th := styles.Default()
	tst := Start(New("x"))

	// Before the scale lane starts the box renders at its 0.8 factor.
	if f := tst.Render(th, 80, 24); f.Width != 38 {
		t.Errorf("width at clock 0 = %d, want 38", f.Width)
	}

	advanceTo(tst, 600*time.Millisecond)
	if f := tst.Render(th, 80, 24); f.Width != DefaultMaxWidth {
		t.Errorf("settled width = %d, want %d", f.Width, DefaultMaxWidth)
	}
}

func TestRenderFitsNarrowSurface(t *testing.T) {
	th := styles.Default()
	tst := settled(New("x"))

	f := tst.Render(th, 40, 24)
	if want := 40 - 2*sideInset; f.Width != want {
		t.Errorf("width on 40-col surface = %d, want %d", f.Width, want)
	}
	if f.Col != sideInset {
		t.Errorf("col = %d, want %d", f.Col, sideInset)
	}
}

func TestTitleAddsHeadlineRow(t *testing.T) {
	th := styles.Default()
	tst := settled(New("body text", WithTitle("Import finished")))

	f := tst.Render(th, 80, 24)
	if f.Height != 5 {
		t.Errorf("height with title = %d, want 5", f.Height)
	}
	plain := ansi.Strip(f.Content)
	if !strings.Contains(plain, "Import finished") || !strings.Contains(plain, "body text") {
		t.Error("rendered box missing title or message")
	}
}

func TestZeroDurationHidesCountdown(t *testing.T) {
	th := styles.Default()
	tst := Start(New("x", WithDuration(0)))

	f := tst.Render(th, 80, 24)
	if f.Height != 3 {
		t.Errorf("height without countdown = %d, want 3", f.Height)
	}
}

func TestLongMessageWrapsCapped(t *testing.T) {
	th := styles.Default()
	long := strings.TrimSpace(strings.Repeat("word ", 40))
	tst := settled(New(long, WithDuration(time.Hour)))

	f := tst.Render(th, 80, 24)
	// three message rows, countdown, two border rows
	if f.Height != 6 {
		t.Errorf("height for wrapped message = %d, want 6", f.Height)
	}
	if !strings.Contains(ansi.Strip(f.Content), "…") {
		t.Error("capped message should end with an ellipsis")
	}
}

func TestRemovedRendersNothing(t *testing.T) {
	th := styles.Default()
	tst := Start(New("x"))
	tst.ForceRemove()

	if f := tst.Render(th, 80, 24); f != (Frame{}) {
		t.Errorf("removed instance rendered %+v, want zero frame", f)
	}
	live := Start(New("x"))
	if f := live.Render(th, 0, 0); f != (Frame{}) {
		t.Errorf("degenerate surface rendered %+v, want zero frame", f)
	}
}

func TestFrameContains(t *testing.T) {
	f := Frame{Row: 5, Col: 10, Width: 20, Height: 4}

	tests := []struct {
		name string
		col  int
		row  int
		want bool
	}{
		{"top left corner", 10, 5, true},
		{"bottom right interior", 29, 8, true},
		{"left of box", 9, 6, false},
		{"right of box", 30, 6, false},
		{"above box", 15, 4, false},
		{"below box", 15, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Contains(tt.col, tt.row); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}

	var zero Frame
	if zero.Contains(0, 0) {
		t.Error("zero frame should contain nothing")
	}
}
