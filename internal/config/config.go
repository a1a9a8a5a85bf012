// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing and runtime options shared by
// asciigen's CLI and interactive shell, translating Cobra/Viper flag values
// into a strongly typed struct, and owns the config file on disk.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/asciigen/internal/figlet"
	"github.com/example/asciigen/internal/output"
	"github.com/example/asciigen/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultWidth     = 80
	DefaultHighlight = "bold yellow"
	DefaultLogLevel  = "warn"
)

// Options holds all CLI configuration used by the generator.
type Options struct {
	Text        string
	Font        string
	DefaultFont string
	Random      bool
	Width       int
	Output      string
	AllFonts    bool
	ListFonts   bool
	Search      string
	Interactive bool
	Center      bool
	Vertical    bool
	Animate     bool
	FontDirs    []string
	Highlight   string
	NoColor     bool
	LogLevel    string

	// OutputSet records whether Output came from the user rather than the default.
	OutputSet bool
}

// Config is the persisted subset of Options, passed explicitly to the
// renderer, the layout helpers and the shell.
type Config struct {
	Width       int      `yaml:"width"`
	DefaultFont string   `yaml:"default-font"`
	Output      string   `yaml:"output"`
	FontDirs    []string `yaml:"font-dir,omitempty"`
	Highlight   string   `yaml:"highlight"`
	LogLevel    string   `yaml:"log-level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:       DefaultWidth,
		DefaultFont: figlet.DefaultFont,
		Output:      output.DefaultPath,
		Highlight:   DefaultHighlight,
		LogLevel:    DefaultLogLevel,
	}
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	def := Default()
	return &Options{
		DefaultFont: def.DefaultFont,
		Width:       def.Width,
		Output:      def.Output,
		Highlight:   def.Highlight,
		LogLevel:    def.LogLevel,
	}
}

// AddFlags binds configuration flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches generator flags to an arbitrary FlagSet and returns the flag names.
func (o *Options) BindFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.StringVarP(&o.Text, "text", "t", "", "Text to convert (defaults to the positional arguments)")
	names = append(names, "text")
	fs.StringVarP(&o.Font, "font", "f", "", "Font name or number from --list-fonts")
	names = append(names, "font")
	fs.StringVar(&o.DefaultFont, "default-font", o.DefaultFont, "Font used when --font is not given")
	names = append(names, "default-font")
	fs.BoolVarP(&o.Random, "random", "r", false, "Render with a random font")
	names = append(names, "random")
	fs.IntVarP(&o.Width, "width", "w", o.Width, "Maximum width of the generated art")
	names = append(names, "width")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Save the art to this file instead of printing it")
	names = append(names, "output")
	fs.BoolVarP(&o.AllFonts, "all-fonts", "a", false, "Render the text with every font (requires --output)")
	names = append(names, "all-fonts")
	fs.BoolVarP(&o.ListFonts, "list-fonts", "l", false, "List all available fonts and exit")
	names = append(names, "list-fonts")
	fs.StringVarP(&o.Search, "search", "s", "", "List fonts whose name contains this text and exit")
	names = append(names, "search")
	fs.BoolVarP(&o.Interactive, "interactive", "i", false, "Start the interactive shell")
	names = append(names, "interactive")
	fs.BoolVarP(&o.Center, "center", "c", false, "Center the art in the terminal")
	names = append(names, "center")
	fs.BoolVar(&o.Vertical, "vertical", false, "With --center, also center vertically")
	names = append(names, "vertical")
	fs.BoolVar(&o.Animate, "animate", false, "With --center, blink the art before the final draw")
	names = append(names, "animate")
	fs.StringSliceVar(&o.FontDirs, "font-dir", nil, "Extra directories containing .flf fonts (repeat or comma-separate)")
	names = append(names, "font-dir")
	fs.StringVar(&o.Highlight, "highlight", o.Highlight, "Style used to highlight search matches (e.g. \"bold yellow\", \"BgBlue\")")
	names = append(names, "highlight")
	fs.BoolVar(&o.NoColor, "no-color", false, "Disable colored output")
	names = append(names, "no-color")
	return names
}

// ValidateFontChoice rejects an explicit font combined with --random.
func (o *Options) ValidateFontChoice() error {
	if o.Font != "" && o.Random {
		return errors.New("you cannot use both --font and --random options together")
	}
	return nil
}

// Validate ensures provided options are coherent.
func (o *Options) Validate() error {
	if err := o.ValidateFontChoice(); err != nil {
		return err
	}
	if o.AllFonts && !o.OutputSet {
		return errors.New("you need to use --output with --all-fonts option")
	}
	return o.Config().Validate()
}

// Config extracts the persisted settings.
func (o *Options) Config() Config {
	return Config{
		Width:       o.Width,
		DefaultFont: o.DefaultFont,
		Output:      o.Output,
		FontDirs:    append([]string(nil), o.FontDirs...),
		Highlight:   o.Highlight,
		LogLevel:    o.LogLevel,
	}
}

// Validate checks value ranges and style names.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if strings.TrimSpace(c.DefaultFont) == "" {
		return errors.New("default font must not be empty")
	}
	if _, err := style.Parse(c.Highlight); err != nil {
		return fmt.Errorf("invalid highlight style: %w", err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// Highlighter resolves the highlight style into the function that paints
// search matches. It is nil for an empty style and returns plain text while
// colors are off.
func (c Config) Highlighter() (func(string) string, error) {
	paint, err := style.Painter(c.Highlight)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight style: %w", err)
	}
	return paint, nil
}
