// main.go bootstraps asciigen: it builds the root Cobra command, loads the config file and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/asciigen/internal/config"
	"github.com/example/asciigen/internal/figlet"
	"github.com/example/asciigen/internal/logging"
	"github.com/example/asciigen/internal/ui"
	"github.com/example/asciigen/internal/version"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(rootCmd.ErrOrStderr(), err)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		os.Exit(1)
	}
}

// app carries what PersistentPreRunE resolves for the commands that run after it.
type app struct {
	opts       *config.Options
	configPath string
	configFile string
	log        logr.Logger
	renderer   *figlet.Renderer
}

func newRootCommand() *cobra.Command {
	a := &app{opts: config.NewOptions(), log: logr.Discard()}
	cmd := &cobra.Command{
		Use:   "asciigen [TEXT...]",
		Short: "Turn text into ASCII-art banners",
		Long: `asciigen renders text as ASCII-art banners with FIGlet fonts. The banner is
printed to the terminal, centered on screen, or saved to a text file. Run it
without text (or with -i) to open the interactive shell.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args)
		},
	}
	cmd.SetVersionTemplate(version.Get().String() + "\n")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file to use (default: $"+config.EnvConfig+" or config.yaml in the config directories)")
	cmd.PersistentFlags().StringVar(&a.opts.LogLevel, "log-level", a.opts.LogLevel, "Log level for diagnostics on stderr (debug, info, warn, error)")
	a.opts.AddFlags(cmd)
	registerFontCompletion(cmd, a)
	cmd.AddCommand(
		newVersionCommand(),
		newCompletionCommand(cmd),
		newShellCommand(a),
	)
	cmd.Example = `  # Print a banner with the default font
  asciigen Hello World

  # Pick a font by name or by its number from --list-fonts
  asciigen -t "Hello" -f slant
  asciigen -t "Hello" -f 42

  # Save every font's rendering to one file
  asciigen -t "Hello" --all-fonts -o all.txt

  # Find fonts and center the result
  asciigen -s block
  asciigen -t "Hi" -f block --center --vertical`
	decorateCommandHelp(cmd, "Generator Flags")
	return cmd
}

// setup reads the config file into every flag the user left unset, applies
// the color switch and builds the logger and the font renderer.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	v := config.NewViper(path)
	if err := config.Read(v, path != ""); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	root := cmd.Root()
	if err := config.Bind(v, root.PersistentFlags(), root.Flags(), cmd.Flags()); err != nil {
		return err
	}
	a.configFile = v.ConfigFileUsed()
	a.opts.OutputSet = root.Flags().Changed("output")
	if a.opts.NoColor {
		color.NoColor = true
	}

	log, err := logging.New(a.opts.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	a.log.V(1).Info("configuration resolved", "file", a.configFile, "width", a.opts.Width, "defaultFont", a.opts.DefaultFont)
	a.renderer = figlet.NewRenderer(figlet.NewCatalog(a.opts.FontDirs, log), log)
	return nil
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	ui.NewMessenger(w, w).Failure("%s", figlet.UserMessage(err))
}
