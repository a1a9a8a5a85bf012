package shell

import (
	"github.com/example/asciigen/internal/config"
	"github.com/example/asciigen/internal/output"
)

// Session is the state one shell carries between commands.
type Session struct {
	Font   string
	Width  int
	Output string
	// Last holds the most recent rendering, saved by "save".
	Last []output.Block
}

func newSession(cfg config.Config) *Session {
	return &Session{
		Font:   cfg.DefaultFont,
		Width:  cfg.Width,
		Output: cfg.Output,
	}
}

// Config folds the session's choices back into cfg.
func (s *Session) Config(cfg config.Config) config.Config {
	cfg.DefaultFont = s.Font
	cfg.Width = s.Width
	cfg.Output = s.Output
	return cfg
}
