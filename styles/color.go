package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade blends target toward base. Terminal cells have no alpha channel,
// so opacity renders as this blend against the backdrop color: 1 keeps
// target intact, 0 disappears into base. Blending happens in HCL space
// for perceptually uniform transitions.
func Fade(target, base lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return target
	}
	if opacity < 0 {
		opacity = 0
	}
	from, _ := colorful.MakeColor(parseColor(base))
	to, _ := colorful.MakeColor(parseColor(target))
	return lipgloss.Color(from.BlendHcl(to, opacity).Clamped().Hex())
}

// Lighten blends c toward white, amount 0 keeping c and 1 reaching white.
func Lighten(c lipgloss.Color, amount float64) lipgloss.Color {
	return Fade(lipgloss.Color("#ffffff"), c, amount)
}

// Darken blends c toward black.
func Darken(c lipgloss.Color, amount float64) lipgloss.Color {
	return Fade(lipgloss.Color("#000000"), c, amount)
}

// blendSteps returns n colors stepped from one endpoint to the other in
// HCL space.
func blendSteps(n int, from, to lipgloss.Color) []color.Color {
	if n < 2 {
		return []color.Color{parseColor(from)}
	}

	c1, _ := colorful.MakeColor(parseColor(from))
	c2, _ := colorful.MakeColor(parseColor(to))

	steps := make([]color.Color, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		steps[i] = c1.BlendHcl(c2, t).Clamped()
	}

	return steps
}

// parseColor converts a lipgloss hex color to a color.Color.
// ANSI palette values fall back to a neutral gray.
func parseColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if (len(hex) == 7 || len(hex) == 4) && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// hexOf formats any color as a hex string.
func hexOf(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
