// File: cmd/asciigen/generate.go
// Brief: CLI command wiring and implementation for 'generate'.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/asciigen/internal/layout"
	"github.com/example/asciigen/internal/output"
	"github.com/example/asciigen/internal/ui"
	"github.com/spf13/cobra"
)

// runGenerate is the root command: list or search fonts, or render the text
// and print or save it, then optionally open the shell.
func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	opts := a.opts
	out := cmd.OutOrStdout()
	msg := ui.NewMessenger(out, cmd.ErrOrStderr())
	catalog := a.renderer.Catalog()

	if opts.ListFonts {
		fonts := catalog.Fonts()
		msg.Info("Available fonts (%d):", len(fonts))
		printRows(out, layout.Columns(fonts, ui.TerminalWidth(out)))
		return nil
	}
	if opts.Search != "" {
		if err := opts.Config().Validate(); err != nil {
			return err
		}
		paint, err := opts.Config().Highlighter()
		if err != nil {
			return err
		}
		rows, ok := layout.Search(opts.Search, catalog.Fonts(), ui.TerminalWidth(out), paint)
		if !ok {
			msg.Warning("No fonts found matching %q", opts.Search)
			return nil
		}
		msg.Info("Fonts matching %q (%d):", opts.Search, len(layout.Filter(opts.Search, catalog.Fonts())))
		printRows(out, rows)
		return nil
	}
	if err := opts.ValidateFontChoice(); err != nil {
		return err
	}

	text := opts.Text
	if text == "" {
		text = strings.Join(args, " ")
	}
	if strings.TrimSpace(text) == "" {
		if !opts.Interactive {
			msg.Warning("No text provided. Starting interactive mode...")
		}
		return a.runShell(cmd)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	blocks, err := a.renderBlocks(cmd, text)
	if err != nil {
		return err
	}
	if opts.OutputSet {
		written, err := output.Write(opts.Output, blocks)
		if err != nil {
			return err
		}
		msg.Success("ASCII art saved to %s", written)
	} else if err := a.printBlocks(out, blocks); err != nil {
		return err
	}

	if opts.Interactive {
		return a.runShell(cmd)
	}
	return nil
}

func (a *app) renderBlocks(cmd *cobra.Command, text string) ([]output.Block, error) {
	opts := a.opts
	catalog := a.renderer.Catalog()

	if opts.AllFonts {
		fonts := catalog.Fonts()
		progress := ui.StartProgress(cmd.ErrOrStderr(), "Rendering fonts", len(fonts))
		blocks := make([]output.Block, 0, len(fonts))
		for _, font := range fonts {
			art, err := a.renderer.Render(text, font, opts.Width)
			progress.Step(font)
			if err != nil {
				a.log.Info("skipping font", "font", font, "error", err.Error())
				continue
			}
			blocks = append(blocks, output.Block{Font: font, Art: art})
		}
		progress.Stop(len(blocks) > 0)
		return blocks, nil
	}

	var font string
	if opts.Random {
		font = catalog.Random(nil)
	} else {
		spec := opts.Font
		if spec == "" {
			spec = opts.DefaultFont
		}
		resolved, err := catalog.Resolve(spec)
		if err != nil {
			return nil, err
		}
		font = resolved
	}
	a.log.V(1).Info("rendering", "font", font, "width", opts.Width)
	art, err := a.renderer.Render(text, font, opts.Width)
	if err != nil {
		return nil, err
	}
	return []output.Block{{Font: font, Art: art}}, nil
}

// printBlocks writes a single rendering to out. Random picks are introduced
// by their font header, and --center draws the art through layout.Display.
func (a *app) printBlocks(out io.Writer, blocks []output.Block) error {
	opts := a.opts
	for _, block := range blocks {
		if opts.Random {
			fmt.Fprintln(out, output.Header(block.Font))
		}
		if !opts.Center {
			fmt.Fprint(out, block.Art)
			continue
		}
		display := layout.DisplayOptions{
			CenterOptions: layout.CenterOptions{Vertical: opts.Vertical},
			Clear:         opts.Vertical || opts.Animate,
			Animate:       opts.Animate,
		}
		lines := layout.EqualizeWidths(layout.SplitLines(block.Art))
		if err := layout.Display(out, lines, ui.TerminalSize(out), display); err != nil {
			return err
		}
	}
	return nil
}

func printRows(out io.Writer, rows []string) {
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out)
}
