package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestResolve(t *testing.T) {
	th := Default()

	tests := []struct {
		name   string
		kind   Kind
		custom lipgloss.Color
		want   lipgloss.Color
	}{
		{"success", KindSuccess, "", th.Success},
		{"failure", KindFailure, "", th.Failure},
		{"warning", KindWarning, "", th.Warning},
		{"info", KindInfo, "", th.Info},
		{"custom with color", KindCustom, lipgloss.Color("#123456"), lipgloss.Color("#123456")},
		{"custom without color", KindCustom, "", th.Neutral},
		{"custom ignores theme kinds", KindCustom, lipgloss.Color("#abcdef"), lipgloss.Color("#abcdef")},
		{"unknown kind", Kind("bogus"), "", th.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, icon := Resolve(th, tt.kind, tt.custom)
			if bg != tt.want {
				t.Errorf("Resolve(%q) background = %q, want %q", tt.kind, bg, tt.want)
			}
			if icon == "" {
				t.Errorf("Resolve(%q) returned an empty icon", tt.kind)
			}
		})
	}
}

func TestIconFollowsStyle(t *testing.T) {
	defer SetIconStyle(IconsUnicode)

	SetIconStyle(IconsASCII)
	if got := Icon(KindSuccess); got != "+" {
		t.Errorf("ascii success icon = %q, want %q", got, "+")
	}

	SetIconStyle(IconsUnicode)
	if got := Icon(KindSuccess); got != "✓" {
		t.Errorf("unicode success icon = %q, want %q", got, "✓")
	}

	SetIconStyle(IconStyle("bogus"))
	if got := Icon(KindFailure); got != "✗" {
		t.Errorf("unknown style should fall back to unicode, got %q", got)
	}
}

func TestFade(t *testing.T) {
	target := lipgloss.Color("#4caf50")
	base := lipgloss.Color("#1a1a1a")

	if got := Fade(target, base, 1); got != target {
		t.Errorf("opacity 1 = %q, want untouched target %q", got, target)
	}
	if got := Fade(target, base, 0); got != base {
		t.Errorf("opacity 0 = %q, want base %q", got, base)
	}
	if got := Fade(target, base, -0.5); got != base {
		t.Errorf("negative opacity = %q, want base %q", got, base)
	}

	mid := Fade(target, base, 0.5)
	if mid == target || mid == base {
		t.Errorf("opacity 0.5 = %q, should differ from both endpoints", mid)
	}
	if len(mid) != 7 || mid[0] != '#' {
		t.Errorf("blend should produce a hex color, got %q", mid)
	}
}

func TestLighten(t *testing.T) {
	c := lipgloss.Color("#2196f3")

	if got := Lighten(c, 0); got != c {
		t.Errorf("amount 0 = %q, want %q", got, c)
	}
	if got := Lighten(c, 1); got != lipgloss.Color("#ffffff") {
		t.Errorf("amount 1 = %q, want #ffffff", got)
	}
}

func TestApplyGradientKeepsText(t *testing.T) {
	from := lipgloss.Color("#ff0000")
	to := lipgloss.Color("#0000ff")

	tests := []struct {
		name string
		text string
	}{
		{"plain", "glint"},
		{"single cluster", "g"},
		{"combining sequence", "éé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(ApplyGradient(tt.text, from, to)); got != tt.text {
				t.Errorf("stripped gradient = %q, want %q", got, tt.text)
			}
			if got := ansi.Strip(ApplyBoldGradient(tt.text, from, to)); got != tt.text {
				t.Errorf("stripped bold gradient = %q, want %q", got, tt.text)
			}
		})
	}

	if got := ApplyGradient("", from, to); got != "" {
		t.Errorf("empty text = %q, want empty", got)
	}
}
