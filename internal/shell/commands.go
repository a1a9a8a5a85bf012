package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/asciigen/internal/config"
	"github.com/example/asciigen/internal/layout"
	"github.com/example/asciigen/internal/output"
	"github.com/example/asciigen/internal/style"
	"github.com/example/asciigen/internal/ui"
)

// Command is one entry of the shell's command table.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Run         func(s *Shell, args []string) error
}

func commandTable() []Command {
	return []Command{
		{Name: "help", Aliases: []string{"?"}, Usage: "help", Description: "Show this command list", Run: (*Shell).cmdHelp},
		{Name: "fonts", Usage: "fonts", Description: "List every available font", Run: (*Shell).cmdFonts},
		{Name: "search", Usage: "search <keyword>", Description: "List fonts whose name contains keyword", Run: (*Shell).cmdSearch},
		{Name: "font", Usage: "font [name|number]", Description: "Show or set the current font", Run: (*Shell).cmdFont},
		{Name: "width", Usage: "width [n]", Description: "Show or set the render width", Run: (*Shell).cmdWidth},
		{Name: "render", Usage: "render <text>", Description: "Render text with the current font", Run: (*Shell).cmdRender},
		{Name: "random", Usage: "random <text>", Description: "Render text with a random font", Run: (*Shell).cmdRandom},
		{Name: "center", Usage: "center [--vertical] [--animate] <text>", Description: "Render text as a centered banner", Run: (*Shell).cmdCenter},
		{Name: "save", Usage: "save [path]", Description: "Save the last rendering", Run: (*Shell).cmdSave},
		{Name: "saveall", Usage: "saveall <text>", Description: "Render text with every font into the output file", Run: (*Shell).cmdSaveAll},
		{Name: "output", Usage: "output [path]", Description: "Show or set the output file", Run: (*Shell).cmdOutput},
		{Name: "config", Usage: "config [show|save]", Description: "Show the settings or save them to the config file", Run: (*Shell).cmdConfig},
		{Name: "about", Usage: "about", Description: "About asciigen", Run: (*Shell).cmdAbout},
		{Name: "clear", Aliases: []string{"cls"}, Usage: "clear", Description: "Clear the screen", Run: (*Shell).cmdClear},
		{Name: "exit", Aliases: []string{"quit"}, Usage: "exit", Description: "Leave the shell", Run: (*Shell).cmdExit},
	}
}

func usageError(cmd string) error {
	return fmt.Errorf("%w: %s", errUsage, cmd)
}

func (s *Shell) cmdHelp(_ []string) error {
	widest := 0
	for _, cmd := range s.commands {
		widest = max(widest, layout.VisibleLen(cmd.Usage))
	}
	fmt.Fprintln(s.out)
	for _, cmd := range s.commands {
		usage := style.Apply(cmd.Usage, style.TokenBrightCyan)
		fmt.Fprintf(s.out, "%s%s  %s\n", strings.Repeat(" ", layout.Indent), layout.PadRight(usage, widest, " "), cmd.Description)
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) cmdFonts(_ []string) error {
	fonts := s.renderer.Catalog().Fonts()
	s.msg.Info("Available fonts (%d):", len(fonts))
	for _, row := range layout.Columns(fonts, s.width()) {
		fmt.Fprintln(s.out, row)
	}
	return nil
}

func (s *Shell) cmdSearch(args []string) error {
	keyword := strings.Join(args, " ")
	if keyword == "" {
		return usageError("search <keyword>")
	}
	paint, err := s.cfg.Highlighter()
	if err != nil {
		return err
	}
	fonts := s.renderer.Catalog().Fonts()
	rows, ok := layout.Search(keyword, fonts, s.width(), paint)
	if !ok {
		s.msg.Warning("No fonts found matching %q", keyword)
		return nil
	}
	s.msg.Info("Fonts matching %q (%d):", keyword, len(layout.Filter(keyword, fonts)))
	for _, row := range rows {
		fmt.Fprintln(s.out, row)
	}
	return nil
}

func (s *Shell) cmdFont(args []string) error {
	if len(args) == 0 {
		s.msg.Info("Current font: %s", s.session.Font)
		return nil
	}
	name, err := s.renderer.Catalog().Resolve(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.session.Font = name
	s.msg.Success("Font set to %s", name)
	return nil
}

func (s *Shell) cmdWidth(args []string) error {
	if len(args) == 0 {
		s.msg.Info("Current width: %d", s.session.Width)
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("width must be a positive number, got %q", args[0])
	}
	s.session.Width = n
	s.msg.Success("Width set to %d", n)
	return nil
}

func (s *Shell) render(text, font string) (output.Block, error) {
	art, err := s.renderer.Render(text, font, s.session.Width)
	if err != nil {
		return output.Block{}, err
	}
	return output.Block{Font: font, Art: art}, nil
}

func (s *Shell) cmdRender(args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return usageError("render <text>")
	}
	block, err := s.render(text, s.session.Font)
	if err != nil {
		return err
	}
	s.session.Last = []output.Block{block}
	fmt.Fprint(s.out, block.Art)
	return nil
}

func (s *Shell) cmdRandom(args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return usageError("random <text>")
	}
	block, err := s.render(text, s.renderer.Catalog().Random(s.rand))
	if err != nil {
		return err
	}
	s.session.Last = []output.Block{block}
	fmt.Fprint(s.out, output.Format([]output.Block{block}))
	return nil
}

func (s *Shell) cmdCenter(args []string) error {
	opts := layout.DisplayOptions{Sleep: s.sleep}
	var words []string
	for i, arg := range args {
		switch arg {
		case "-v", "--vertical":
			opts.Vertical = true
			continue
		case "-a", "--animate":
			opts.Animate = true
			continue
		case "--":
			words = append(words, args[i+1:]...)
		default:
			words = append(words, arg)
			continue
		}
		break
	}
	text := strings.Join(words, " ")
	if text == "" {
		return usageError("center [--vertical] [--animate] <text>")
	}
	block, err := s.render(text, s.session.Font)
	if err != nil {
		return err
	}
	s.session.Last = []output.Block{block}
	opts.Clear = opts.Vertical || opts.Animate
	lines := layout.EqualizeWidths(layout.SplitLines(block.Art))
	return layout.Display(s.out, lines, s.size(), opts)
}

func (s *Shell) cmdSave(args []string) error {
	if len(s.session.Last) == 0 {
		return errors.New("nothing to save yet; render some text first")
	}
	path := s.session.Output
	if len(args) > 0 {
		path = args[0]
	}
	written, err := output.Write(path, s.session.Last)
	if err != nil {
		return err
	}
	s.msg.Success("ASCII art saved to %s", written)
	return nil
}

func (s *Shell) cmdSaveAll(args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return usageError("saveall <text>")
	}
	fonts := s.renderer.Catalog().Fonts()
	progress := ui.StartProgress(s.out, "Rendering fonts", len(fonts))
	blocks := make([]output.Block, 0, len(fonts))
	for _, font := range fonts {
		block, err := s.render(text, font)
		progress.Step(font)
		if err != nil {
			s.log.V(1).Info("skipping font", "font", font, "error", err.Error())
			continue
		}
		blocks = append(blocks, block)
	}
	progress.Stop(len(blocks) > 0)
	written, err := output.Write(s.session.Output, blocks)
	if err != nil {
		return err
	}
	s.session.Last = blocks
	s.msg.Success("Saved %d fonts to %s", len(blocks), written)
	return nil
}

func (s *Shell) cmdOutput(args []string) error {
	if len(args) == 0 {
		s.msg.Info("Output file: %s", s.session.Output)
		return nil
	}
	s.session.Output = args[0]
	s.msg.Success("Output file set to %s", args[0])
	return nil
}

func (s *Shell) cmdConfig(args []string) error {
	action := "show"
	if len(args) > 0 {
		action = strings.ToLower(args[0])
	}
	cfg := s.session.Config(s.cfg)
	switch action {
	case "show":
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, string(data))
		return nil
	case "save":
		path := s.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		before, changed, err := config.Save(path, cfg)
		if err != nil {
			return err
		}
		if !changed {
			s.msg.Info("Config at %s is already up to date", path)
			return nil
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if diff := ui.ColorDiff(before, string(data), path); diff != "" {
			fmt.Fprint(s.out, diff)
		}
		s.cfg = cfg
		s.msg.Success("Config saved to %s", path)
		return nil
	default:
		return usageError("config [show|save]")
	}
}

func (s *Shell) cmdAbout(_ []string) error {
	md, err := ui.RenderMarkdown(aboutText, s.width())
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, md)
	return nil
}

func (s *Shell) cmdClear(_ []string) error {
	fmt.Fprint(s.out, layout.ClearScreen)
	return nil
}

func (s *Shell) cmdExit(_ []string) error {
	return errExit
}
