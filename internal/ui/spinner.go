// spinner.go implements the single-line progress indicator shown while asciigen renders a batch of fonts.
package ui

import (
	"fmt"
	"io"

	"github.com/example/asciigen/internal/layout"
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// Progress redraws one status line in place as a batch advances. A nil
// *Progress is valid and does nothing.
type Progress struct {
	w       io.Writer
	message string
	total   int
	done    int
	width   int
}

// StartProgress returns a Progress writing to w, or nil when w is not a tty.
func StartProgress(w io.Writer, message string, total int) *Progress {
	if !IsTerminalWriter(w) {
		return nil
	}
	return &Progress{w: w, message: message, total: total, width: TerminalWidth(w)}
}

// Step marks one more item as done and names it on the status line.
func (p *Progress) Step(name string) {
	if p == nil {
		return
	}
	p.done++
	line := fmt.Sprintf("%s %c [%d/%d] %s", p.message, spinnerFrames[p.done%len(spinnerFrames)], p.done, p.total, name)
	fmt.Fprintf(p.w, "\r%s", layout.PadRight(truncateVisible(line, p.width-1), p.width-1, " "))
}

// Stop prints the final "[done]" or "[fail]" status.
func (p *Progress) Stop(success bool) {
	if p == nil {
		return
	}
	status := "[done]"
	if !success {
		status = "[fail]"
	}
	fmt.Fprintf(p.w, "\r%s\r%s %s\n", layout.PadRight("", p.width-1, " "), p.message, status)
}

func truncateVisible(s string, width int) string {
	if width <= 0 || layout.VisibleLen(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && layout.VisibleLen(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}
