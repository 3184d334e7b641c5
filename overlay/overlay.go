// Package overlay composites positioned layers over a rendered base
// view. Layers are plain strings; compositing is ANSI-aware so styled
// content survives being cut and spliced.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas returns a blank width×height layer.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n")
}

// Place puts content onto a canvas with its top-left corner at row/col.
// Rows and columns outside the canvas are clipped, so content may hang
// off any edge, or sit entirely outside it.
func Place(canvas, content string, row, col int) string {
	canvasLines := strings.Split(canvas, "\n")
	height := len(canvasLines)

	for j, contentLine := range strings.Split(content, "\n") {
		r := row + j
		if r < 0 || r >= height {
			continue
		}

		lineWidth := ansi.StringWidth(ansi.Strip(canvasLines[r]))
		contentWidth := ansi.StringWidth(ansi.Strip(contentLine))

		// Clip the content line against the left edge, then the right.
		cutFrom := 0
		start := col
		if start < 0 {
			cutFrom = -start
			start = 0
		}
		if cutFrom >= contentWidth || start >= lineWidth {
			continue
		}
		cutTo := contentWidth
		end := start + contentWidth - cutFrom
		if end > lineWidth {
			cutTo -= end - lineWidth
			end = lineWidth
		}

		part := ansi.Cut(contentLine, cutFrom, cutTo)
		base := canvasLines[r]
		result := ansi.Cut(base, 0, start) + part
		if end < lineWidth {
			result += ansi.Cut(base, end, lineWidth)
		}
		canvasLines[r] = result
	}

	return strings.Join(canvasLines, "\n")
}

// Compose overlays a layer on top of a base view. Each layer line's
// visible content (between its first and last non-space cell) replaces
// the base at the same position; visually empty lines leave the base
// untouched.
func Compose(base, layer string, width int) string {
	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")

	for i, layerLine := range layerLines {
		if i >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plain := ansi.Strip(layerLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}

		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		// Extract the layer content with ANSI codes intact
		content := ansi.Cut(layerLine, startCol, endCol)

		baseLine := baseLines[i]
		baseWidth := ansi.StringWidth(ansi.Strip(baseLine))
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
