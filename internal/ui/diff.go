package ui

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

var (
	diffAdded   = color.New(color.FgGreen).SprintFunc()
	diffRemoved = color.New(color.FgRed).SprintFunc()
	diffHunk    = color.New(color.FgCyan).SprintFunc()
)

// ColorDiff returns a colored unified diff of before and after, or "" when
// they are equal.
func ColorDiff(before, after, name string) string {
	before = strings.TrimRight(before, "\n")
	after = strings.TrimRight(after, "\n")
	if before == after {
		return ""
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before + "\n"),
		B:        difflib.SplitLines(after + "\n"),
		FromFile: name + " (before)",
		ToFile:   name + " (after)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunk(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAdded(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffRemoved(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
