package toast

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/render"
	"github.com/glintui/glint/styles"
)

const (
	sideInset = 2 // minimum columns between box and surface sides
	edgeInset = 1 // rows between the settled box and its anchored edge

	minBoxWidth     = 12
	maxMessageLines = 3
)

// Frame is a rendered toast plus its placement on the surface. Row and
// Col may lie outside the surface while the box is sliding; the
// compositor clips.
type Frame struct {
	Content string
	Row     int
	Col     int
	Width   int
	Height  int
}

// Contains reports whether the surface cell at (col, row) lies inside
// the frame. The zero frame contains nothing.
func (f Frame) Contains(col, row int) bool {
	return f.Width > 0 && f.Height > 0 &&
		col >= f.Col && col < f.Col+f.Width &&
		row >= f.Row && row < f.Row+f.Height
}

// Render produces the styled box and its placement for the current
// instance state. Removed instances and degenerate surfaces yield the
// zero frame.
func (t *Toast) Render(th *styles.Theme, surfaceWidth, surfaceHeight int) Frame {
	if t.state == StateRemoved || surfaceWidth <= 0 || surfaceHeight <= 0 {
		return Frame{}
	}

	width := t.boxWidth(surfaceWidth)
	content := t.box(th, width)
	height := lipgloss.Height(content)
	row, col := t.place(width, height, surfaceWidth, surfaceHeight)

	return Frame{Content: content, Row: row, Col: col, Width: width, Height: height}
}

// boxWidth applies the scale lane to the configured width and fits the
// result to the surface.
func (t *Toast) boxWidth(surfaceWidth int) int {
	w := int(math.Round(float64(t.Config.MaxWidth) * t.Scale()))
	if maxW := surfaceWidth - 2*sideInset; w > maxW {
		w = maxW
	}
	return max(w, minBoxWidth)
}

// place centers the box horizontally and anchors it vertically, shifted
// by the slide lane beyond the configured edge.
func (t *Toast) place(width, height, surfaceWidth, surfaceHeight int) (row, col int) {
	col = (surfaceWidth - width) / 2

	travel := int(math.Round(t.Offset() * float64(surfaceHeight)))
	if t.Config.Position == PositionTop {
		row = edgeInset - travel
	} else {
		row = surfaceHeight - edgeInset - height + travel
	}
	return row, col
}

// box renders the bordered body at the given outer width. Every color is
// blended toward the theme surface by the fade lane's current opacity;
// terminal cells have no alpha, so this blend is what fading looks like.
func (t *Toast) box(th *styles.Theme, width int) string {
	bg, icon := styles.Resolve(th, t.Config.Kind, t.Config.CustomColor)
	opacity := t.Opacity()

	faded := func(c lipgloss.Color) lipgloss.Color {
		return styles.Fade(c, th.Surface, opacity)
	}
	bgF := faded(bg)

	inner := max(width-4, 4) // minus border and padding columns

	line := func(s string, fg lipgloss.Color, bold bool) string {
		st := lipgloss.NewStyle().Foreground(faded(fg)).Background(bgF).Bold(bold)
		return st.Render(" " + render.Pad(render.TruncateEllipsis(s, inner), inner) + " ")
	}

	prefix := ""
	if t.Config.ShowIcon && icon != "" {
		prefix = icon + " "
	}

	var rows []string
	if t.Config.Title != "" {
		rows = append(rows, line(prefix+t.Config.Title, th.BoxTitleFg, true))
		prefix = "" // the icon belongs to the headline
	}

	wrapW := max(inner-lipgloss.Width(prefix), 1)
	msg := render.Wrap(t.Config.Message, wrapW)
	if len(msg) > maxMessageLines {
		msg = msg[:maxMessageLines]
		msg[maxMessageLines-1] = render.TruncateEllipsis(msg[maxMessageLines-1]+"…", wrapW)
	}
	indent := strings.Repeat(" ", lipgloss.Width(prefix))
	for i, m := range msg {
		if i == 0 {
			rows = append(rows, line(prefix+m, th.BoxFg, false))
		} else {
			rows = append(rows, line(indent+m, th.BoxFg, false))
		}
	}

	if t.Config.Duration > 0 {
		bar := progress.New(
			progress.WithGradient(
				string(faded(styles.Lighten(bg, 0.85))),
				string(faded(styles.Lighten(bg, 0.5))),
			),
			progress.WithoutPercentage(),
			progress.WithWidth(inner),
		)
		bar.EmptyColor = string(faded(styles.Darken(bg, 0.45)))

		pad := lipgloss.NewStyle().Background(bgF).Render(" ")
		rows = append(rows, pad+bar.ViewAs(t.Remaining())+pad)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(faded(styles.Lighten(bg, 0.4))).
		BorderBackground(bgF).
		Render(strings.Join(rows, "\n"))
}
