package styles

import "github.com/charmbracelet/lipgloss"

// Kind selects a toast's preset color scheme and icon.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindCustom  Kind = "custom"
)

// Resolve maps a kind to its background color and icon glyph in the
// active icon style. KindCustom uses the supplied color, falling back to
// the theme's neutral when empty. Unrecognized kinds resolve like
// KindCustom without a color.
func Resolve(th *Theme, k Kind, custom lipgloss.Color) (lipgloss.Color, string) {
	switch k {
	case KindSuccess:
		return th.Success, Icon(KindSuccess)
	case KindFailure:
		return th.Failure, Icon(KindFailure)
	case KindWarning:
		return th.Warning, Icon(KindWarning)
	case KindInfo:
		return th.Info, Icon(KindInfo)
	case KindCustom:
		if custom != "" {
			return custom, Icon(KindCustom)
		}
		return th.Neutral, Icon(KindCustom)
	default:
		return th.Neutral, Icon(KindCustom)
	}
}
