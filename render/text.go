// Package render provides width-aware text helpers for TUI output.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and drops invalid
// UTF-8 bytes. Toast text comes straight from application callers; this
// keeps a stray escape byte from corrupting the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			// Invalid byte, drop it. A literal replacement char in the
			// input is indistinguishable here and gets dropped too.
		case r == ' ':
			b.WriteByte(' ')
		case r == '\t' || !unicode.IsControl(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars (except tab)
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 control range / invalid lead bytes
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 { // NBSP
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, appending "..." when
// it had to cut. Wide characters (CJK, emoji) count by display width.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens a string using the single character ellipsis.
func TruncateEllipsis(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified display width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates if necessary, then pads, so the output is
// exactly width cells wide.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Wrap breaks s into lines no wider than width, splitting on spaces.
// Words wider than a full line are cut onto their own line.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(Sanitize(s))
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   string
		curW  int
	)
	flush := func() {
		if curW > 0 {
			lines = append(lines, cur)
			cur, curW = "", 0
		}
	}
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			flush()
			lines = append(lines, runewidth.Truncate(w, width, "…"))
			continue
		}
		if curW == 0 {
			cur, curW = w, ww
			continue
		}
		if curW+1+ww <= width {
			cur += " " + w
			curW += 1 + ww
			continue
		}
		flush()
		cur, curW = w, ww
	}
	flush()
	return lines
}

// Row creates a line with left and right aligned content, at least one
// space apart.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}
