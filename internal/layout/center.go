package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fallback terminal dimensions used when the real size is unknown.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in character cells.
type Size struct {
	Width  int
	Height int
}

// OrDefault replaces non-positive dimensions with the fallback size.
func (s Size) OrDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s
}

// CenterOptions tunes Center.
type CenterOptions struct {
	// Pad is the single-cell padding character. Defaults to a space.
	Pad string
	// Paint, when set, styles each line's content but not its padding.
	Paint func(string) string
	// Vertical centers the block within the terminal height.
	Vertical bool
}

func (o CenterOptions) pad() string {
	if runewidth.StringWidth(o.Pad) != 1 {
		return " "
	}
	return o.Pad
}

// SplitLines splits s on line breaks, dropping a single trailing newline.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// EqualizeWidths right-pads lines with spaces to the widest visible line, so
// a multi-line block keeps its shape when each line is centered on its own.
func EqualizeWidths(lines []string) []string {
	widest := 0
	for _, line := range lines {
		widest = max(widest, VisibleLen(line))
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = PadRight(line, widest, " ")
	}
	return out
}

// Center pads every line to the full terminal width with its content
// horizontally centered, and optionally pads the block vertically. A line
// wider than the terminal is cut to its first Width raw runes and drawn flush
// left.
func Center(lines []string, size Size, opts CenterOptions) string {
	if len(lines) == 0 {
		return ""
	}
	size = size.OrDefault()
	pad := opts.pad()

	out := make([]string, 0, max(len(lines), size.Height))
	for _, line := range lines {
		left := 0
		if visible := VisibleLen(line); visible > size.Width {
			line = truncateRaw(line, size.Width)
		} else {
			left = (size.Width - visible) / 2
		}
		if opts.Paint != nil {
			line = opts.Paint(line)
		}
		out = append(out, PadRight(strings.Repeat(pad, left)+line, size.Width, pad))
	}

	if opts.Vertical && len(lines) < size.Height {
		blank := strings.Repeat(pad, size.Width)
		top := (size.Height - len(lines)) / 2
		rows := make([]string, 0, size.Height)
		for range top {
			rows = append(rows, blank)
		}
		rows = append(rows, out...)
		for len(rows) < size.Height {
			rows = append(rows, blank)
		}
		out = rows
	}
	return strings.Join(out, "\n")
}
