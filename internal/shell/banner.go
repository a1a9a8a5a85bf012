package shell

import (
	"fmt"
	"strings"

	"github.com/example/asciigen/internal/figlet"
	"github.com/example/asciigen/internal/layout"
	"github.com/example/asciigen/internal/style"
	"github.com/example/asciigen/internal/version"
)

const (
	bannerTitle = "asciigen"
	tagline     = "Simple tool for text to ASCII art generation"
)

const aboutText = `# asciigen

Turns text into ASCII-art banners drawn with FIGlet fonts.

## Rendering

- ` + "`render <text>`" + ` draws text with the current font.
- ` + "`random <text>`" + ` picks a font for you.
- ` + "`center <text>`" + ` shows the banner in the middle of the terminal.

## Fonts

All fonts bundled with the renderer are available. Extra ` + "`.flf`" + ` files
are picked up from the ` + "`font-dir`" + ` directories in the config file.
Use ` + "`fonts`" + ` or ` + "`search <keyword>`" + ` to find one, then
` + "`font <name|number>`" + ` to select it.

## Saving

` + "`save`" + ` writes the last rendering to the output file, ` + "`saveall <text>`" + `
writes one block per font. Each block starts with a ` + "`### FONT: <name> ###`" + ` header.
`

// bannerLines is the start-up banner: the program name drawn in the default
// font above a framed tagline and version.
func bannerLines(r *figlet.Renderer) []string {
	var lines []string
	if art, err := r.Render(bannerTitle, figlet.DefaultFont, 0); err == nil {
		for _, row := range layout.EqualizeWidths(layout.SplitLines(art)) {
			lines = append(lines, style.Apply(row, style.TokenBrightRed))
		}
	}
	return append(lines, framed(tagline, version.Get().String())...)
}

func framed(rows ...string) []string {
	inner := 0
	for _, row := range rows {
		inner = max(inner, layout.VisibleLen(row))
	}
	inner += 2
	border := func(left, right string) string {
		return style.Apply(left+strings.Repeat("═", inner)+right, style.TokenYellow)
	}
	side := style.Apply("║", style.TokenYellow)
	out := []string{border("╔", "╗")}
	for i, row := range rows {
		tok := style.TokenBrightWhite
		if i == len(rows)-1 {
			tok = style.TokenBrightCyan
		}
		// Center each row inside the frame.
		left := (inner - layout.VisibleLen(row)) / 2
		cell := layout.PadRight(strings.Repeat(" ", left)+style.Apply(row, tok), inner, " ")
		out = append(out, side+cell+side)
	}
	return append(out, border("╚", "╝"))
}

func (s *Shell) greet() {
	lines := layout.EqualizeWidths(bannerLines(s.renderer))
	fmt.Fprintln(s.out, layout.Center(lines, s.size(), layout.CenterOptions{}))
	fmt.Fprintln(s.out)
	s.msg.Info("Type 'help' to list commands. Leave with 'exit', Ctrl-C or Ctrl-D.")
}
