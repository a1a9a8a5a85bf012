// messages.go prints the bracketed status lines ("[ * ] ...") used by the CLI and the shell.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bracketColor = color.New(color.FgHiBlue).SprintFunc()
	infoMark     = color.New(color.FgHiCyan).SprintFunc()
	successMark  = color.New(color.FgHiGreen).SprintFunc()
	warningMark  = color.New(color.FgHiYellow).SprintFunc()
	failureMark  = color.New(color.FgHiRed).SprintFunc()
	messageText  = color.New(color.FgHiWhite).SprintFunc()
)

// Messenger writes status lines. Failures go to Err, everything else to Out.
type Messenger struct {
	Out io.Writer
	Err io.Writer
}

// NewMessenger returns a Messenger; a nil errOut reuses out.
func NewMessenger(out, errOut io.Writer) *Messenger {
	if errOut == nil {
		errOut = out
	}
	return &Messenger{Out: out, Err: errOut}
}

func (m *Messenger) Info(format string, args ...any) {
	m.print(m.Out, infoMark("*"), format, args...)
}

func (m *Messenger) Success(format string, args ...any) {
	m.print(m.Out, successMark("+"), format, args...)
}

func (m *Messenger) Warning(format string, args ...any) {
	m.print(m.Out, warningMark("!"), format, args...)
}

func (m *Messenger) Failure(format string, args ...any) {
	m.print(m.Err, failureMark("-"), format, args...)
}

func (m *Messenger) print(w io.Writer, mark string, format string, args ...any) {
	if m == nil || w == nil {
		return
	}
	fmt.Fprintf(w, "%s %s %s %s\n", bracketColor("["), mark, bracketColor("]"), messageText(fmt.Sprintf(format, args...)))
}
