// File: internal/layout/strip.go
// Brief: Internal layout package implementation for 'control sequence stripping'.

// Package layout measures and arranges terminal text: control-sequence
// stripping for width math, numbered multi-column listings, keyword
// highlighting and centered banners. Every function is a pure function of
// its inputs; callers query the terminal size and pass it in.
package layout

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// csi matches ESC '[' parameter bytes, intermediate bytes and a final byte.
// Other escape forms (OSC and friends) are intentionally not matched.
var csi = regexp.MustCompile("\x1b\\[[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]")

// Strip removes CSI control sequences from s. A truncated sequence is left
// as-is.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	return csi.ReplaceAllString(s, "")
}

// VisibleLen returns the number of terminal cells s occupies once control
// sequences are removed.
func VisibleLen(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// PadRight appends pad until the visible length of s reaches width.
func PadRight(s string, width int, pad string) string {
	n := width - VisibleLen(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(pad, n)
}

// truncateRaw keeps the first width runes of s. Escape bytes count like any
// other rune, so a control sequence may be cut short.
func truncateRaw(s string, width int) string {
	if width <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}
