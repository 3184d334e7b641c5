package glint

import (
	"github.com/glintui/glint/overlay"
)

// Overlay composites every live toast over the host's rendered view,
// oldest first so the newest lands on top. It also records each frame's
// geometry for the mouse hit-test. With nothing live, or before the
// first WindowSizeMsg, the base view is returned unchanged.
func (m Model) Overlay(base string) string {
	if len(m.toasts) == 0 || m.width <= 0 || m.height <= 0 {
		return base
	}
	out := base
	for _, e := range m.toasts {
		f := e.toast.Render(m.theme, m.width, m.height)
		e.frame = f
		if f.Content == "" {
			continue
		}
		layer := overlay.Place(overlay.Canvas(m.width, m.height), f.Content, f.Row, f.Col)
		out = overlay.Compose(out, layer, m.width)
	}
	return out
}
