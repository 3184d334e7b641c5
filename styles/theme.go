package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette shared by every toast on a stage and the
// chrome an application draws around them.
type Theme struct {
	// Kind backgrounds
	Success lipgloss.Color
	Failure lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Neutral lipgloss.Color // custom kind without an explicit color

	// Box text
	BoxFg      lipgloss.Color // message text on a kind background
	BoxTitleFg lipgloss.Color // title line, brighter

	// Brand/accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy on the surface (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Surface is the backdrop color toasts fade in from and out to.
	Surface lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common text patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright
}

var defaultTheme = Theme{
	Success: lipgloss.Color("#4caf50"),
	Failure: lipgloss.Color("#f44336"),
	Warning: lipgloss.Color("#ff9800"),
	Info:    lipgloss.Color("#2196f3"),
	Neutral: lipgloss.Color("#616161"),

	BoxFg:      lipgloss.Color("#f5f5f5"),
	BoxTitleFg: lipgloss.Color("#ffffff"),

	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Surface: lipgloss.Color("#1a1a1a"),
}

// Default returns the built-in theme.
func Default() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
	}
}
