// File: internal/ui/term.go
// Brief: Internal ui package implementation for 'terminal helpers'.

package ui

import (
	"io"
	"os"
	"strconv"

	"github.com/example/asciigen/internal/layout"
	"golang.org/x/term"
)

type fdProvider interface {
	Fd() uintptr
}

// TerminalSize reports the size of the terminal behind w. COLUMNS and LINES
// take precedence, then the tty itself; anything still unknown falls back to
// 80x24. The size is queried on every call so resizes are picked up.
func TerminalSize(w io.Writer) layout.Size {
	size := layout.Size{
		Width:  envInt("COLUMNS"),
		Height: envInt("LINES"),
	}
	if size.Width <= 0 || size.Height <= 0 {
		if v, ok := w.(fdProvider); ok {
			if cols, rows, err := term.GetSize(int(v.Fd())); err == nil {
				if size.Width <= 0 {
					size.Width = cols
				}
				if size.Height <= 0 {
					size.Height = rows
				}
			}
		}
	}
	return size.OrDefault()
}

// TerminalWidth returns just the width part of TerminalSize.
func TerminalWidth(w io.Writer) int {
	return TerminalSize(w).Width
}

// IsTerminalWriter reports whether w is backed by a tty.
func IsTerminalWriter(w io.Writer) bool {
	v, ok := w.(fdProvider)
	return ok && term.IsTerminal(int(v.Fd()))
}

// IsTerminalReader reports whether r is backed by a tty.
func IsTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func envInt(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
