package styles

// IconStyle selects the glyph set used for kind icons.
type IconStyle string

const (
	IconsNerd    IconStyle = "nerd"
	IconsUnicode IconStyle = "unicode"
	IconsASCII   IconStyle = "ascii"
)

type iconSet struct {
	Success string
	Failure string
	Warning string
	Info    string
	Custom  string
}

var (
	nerdIcons = iconSet{
		Success: "", // nf-fa-check
		Failure: "", // nf-fa-close
		Warning: "", // nf-fa-warning
		Info:    "", // nf-fa-info_circle
		Custom:  "", // nf-fa-bell
	}

	unicodeIcons = iconSet{
		Success: "✓",
		Failure: "✗",
		Warning: "⚠",
		Info:    "ℹ",
		Custom:  "◆",
	}

	asciiIcons = iconSet{
		Success: "+",
		Failure: "x",
		Warning: "!",
		Info:    "i",
		Custom:  "*",
	}

	// current holds the active glyph set
	current = unicodeIcons
)

// SetIconStyle switches the process-wide glyph set. Call once at
// startup; unknown styles fall back to unicode.
func SetIconStyle(style IconStyle) {
	switch style {
	case IconsNerd:
		current = nerdIcons
	case IconsUnicode:
		current = unicodeIcons
	case IconsASCII:
		current = asciiIcons
	default:
		current = unicodeIcons
	}
}

// Icon returns the glyph for a kind in the active style.
func Icon(k Kind) string {
	switch k {
	case KindSuccess:
		return current.Success
	case KindFailure:
		return current.Failure
	case KindWarning:
		return current.Warning
	case KindInfo:
		return current.Info
	default:
		return current.Custom
	}
}
