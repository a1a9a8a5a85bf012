// File: internal/shell/shell.go
// Brief: Internal shell package implementation for 'interactive loop'.

// Package shell implements asciigen's interactive prompt: a static command
// table, a per-shell Session and the read/dispatch loop. On a terminal the
// loop uses x/term line editing; otherwise it reads plain lines so scripts
// and tests can drive it.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/example/asciigen/internal/config"
	"github.com/example/asciigen/internal/figlet"
	"github.com/example/asciigen/internal/layout"
	"github.com/example/asciigen/internal/ui"
	"github.com/go-logr/logr"
	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
)

// Prompt is printed before every line read.
const Prompt = "asciigen :~# "

var (
	errExit           = errors.New("exit")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

// Options configures a Shell.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Config config.Config
	// ConfigPath is the file "config save" writes; empty means config.DefaultPath().
	ConfigPath string

	Renderer *figlet.Renderer
	Logger   logr.Logger

	// Size reports the terminal size; it is called every time a layout needs it.
	Size  func() layout.Size
	Rand  *rand.Rand
	Sleep func(time.Duration)
}

// Shell reads commands and runs them against its Session.
type Shell struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	msg        *ui.Messenger
	cfg        config.Config
	configPath string
	renderer   *figlet.Renderer
	log        logr.Logger
	size       func() layout.Size
	rand       *rand.Rand
	sleep      func(time.Duration)

	session  *Session
	commands []Command
	byName   map[string]Command
}

// New builds a shell. In, Out and Renderer are required.
func New(opts Options) (*Shell, error) {
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("shell needs an input and an output")
	}
	if opts.Renderer == nil {
		return nil, errors.New("shell needs a renderer")
	}
	if opts.Err == nil {
		opts.Err = opts.Out
	}
	if opts.Size == nil {
		out := opts.Out
		opts.Size = func() layout.Size { return ui.TerminalSize(out) }
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	s := &Shell{
		in:         opts.In,
		out:        opts.Out,
		errOut:     opts.Err,
		msg:        ui.NewMessenger(opts.Out, opts.Err),
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		renderer:   opts.Renderer,
		log:        opts.Logger,
		size:       opts.Size,
		rand:       opts.Rand,
		sleep:      opts.Sleep,
		session:    newSession(opts.Config),
		commands:   commandTable(),
	}
	s.byName = make(map[string]Command, len(s.commands)+2)
	for _, cmd := range s.commands {
		s.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			s.byName[alias] = cmd
		}
	}
	return s, nil
}

// Session exposes the shell's state.
func (s *Shell) Session() *Session {
	return s.session
}

// Run greets the user and processes lines until exit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	if f, ok := s.in.(*os.File); ok && ui.IsTerminalReader(f) && ui.IsTerminalWriter(s.out) {
		return s.runTerminal(ctx, f)
	}
	return s.runLines(ctx)
}

// runLines reads newline-terminated commands. Lines are scanned on their own
// goroutine so a cancelled ctx (Ctrl-C outside raw mode) ends the loop even
// while a read is pending.
func (s *Shell) runLines(ctx context.Context) error {
	s.greet()
	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- scanner.Err()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(s.out, Prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case err := <-done:
			fmt.Fprintln(s.out)
			return err
		case line := <-lines:
			if s.dispatch(line) {
				return nil
			}
		}
	}
}

// runTerminal edits lines in raw mode. The terminal reports both Ctrl-C and
// Ctrl-D on an empty line as io.EOF, which leaves the shell.
func (s *Shell) runTerminal(ctx context.Context, f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		s.log.V(1).Info("raw mode unavailable, reading plain lines", "error", err.Error())
		return s.runLines(ctx)
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	screen := struct {
		io.Reader
		io.Writer
	}{f, s.out}
	t := term.NewTerminal(screen, Prompt)
	size := s.size().OrDefault()
	_ = t.SetSize(size.Width, size.Height)

	// The terminal translates "\n" to "\r\n" while raw mode is on.
	s.out, s.errOut = t, t
	s.msg = ui.NewMessenger(t, t)
	defer func() {
		s.out, s.errOut = screen.Writer, screen.Writer
	}()

	s.greet()
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		if s.dispatch(line) {
			return nil
		}
	}
}

// dispatch runs one line and reports whether the shell should stop.
func (s *Shell) dispatch(line string) bool {
	err := s.Execute(line)
	switch {
	case err == nil:
		return false
	case errors.Is(err, errExit):
		s.msg.Info("Bye!")
		return true
	default:
		s.msg.Failure("%s", figlet.UserMessage(err))
		return false
	}
}

// Execute tokenizes line and runs the matching command. Empty lines do
// nothing. An "exit" command returns an error matched by IsExit.
func (s *Shell) Execute(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("parse command line: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, ok := s.byName[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("%w %q (type 'help' to list commands)", errUnknownCommand, args[0])
	}
	s.log.V(1).Info("shell command", "name", cmd.Name, "args", len(args)-1)
	return cmd.Run(s, args[1:])
}

// IsExit reports whether err asks the shell to stop.
func IsExit(err error) bool {
	return errors.Is(err, errExit)
}

func (s *Shell) width() int {
	return s.size().OrDefault().Width
}
