// Package widgets implements the poll adapters behind the bar's segments.
// Each widget gathers state from one OS service (a CLI tool, a D-Bus
// service, or the compositor stream); rendering lives in internal/bar.
// A failed poll returns an error and the bar keeps showing the last state.
package widgets

import "strings"

// TruncateEnd shortens s to at most max runes, appending an ellipsis when
// anything was cut.
func TruncateEnd(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// TruncateMiddle shortens s to at most max runes by eliding the middle,
// keeping both ends visible. Kubernetes context names tend to differ at
// both ends (cluster prefix, region suffix), so middle elision preserves
// the distinguishing parts.
func TruncateMiddle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	keep := (max - 3) / 2
	tail := max - 3 - keep
	return string(runes[:keep]) + "..." + string(runes[len(runes)-tail:])
}

// FormatWindowTitle renders the active-window segment text: the title
// truncated at 60 runes, or "Desktop" when no window is focused.
func FormatWindowTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Desktop"
	}
	return TruncateEnd(title, 60)
}
