package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

// RenderMarkdown renders md for the terminal, wrapped at width. It uses the
// plain "notty" style when colors are disabled.
func RenderMarkdown(md string, width int) (string, error) {
	styleName := "dark"
	if color.NoColor {
		styleName = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
