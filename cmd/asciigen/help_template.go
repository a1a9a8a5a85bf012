// help_template.go gives every asciigen command the same help layout: description, usage, examples and named flag sections.
package main

import (
	"strings"

	"github.com/example/asciigen/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	localFlagsHeadingKey = "localFlagsHeading"
	localUsageKey        = "localFlagUsages"
	inheritedUsageKey    = "inheritedFlagUsages"
)

// Flag usages never wrap narrower than this.
const minHelpWidth = 60

const commandHelpTemplate = `{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}{{end}}

Usage:
  {{.UseLine}}
{{if .HasExample}}
Examples:
{{.Example}}
{{end}}
{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if (and .IsAvailableCommand (ne .Name "help"))}}  {{rpad .Name .NamePadding}} {{.Short}}
{{end}}{{end}}
{{end}}
{{- if .HasAvailableLocalFlags}}
{{index .Annotations "localFlagsHeading"}}:
{{index .Annotations "localFlagUsages"}}
{{end}}
{{- if .HasAvailableInheritedFlags}}
Global Flags:
{{index .Annotations "inheritedFlagUsages"}}
{{end}}`

// decorateCommandHelp installs the shared template on cmd, naming its own
// flags section heading.
func decorateCommandHelp(cmd *cobra.Command, heading string) {
	if strings.TrimSpace(heading) == "" {
		heading = "Flags"
	}
	cmd.SetHelpTemplate(commandHelpTemplate)
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c.Annotations == nil {
			c.Annotations = make(map[string]string)
		}
		if c == cmd {
			c.Annotations[localFlagsHeadingKey] = heading
		} else if _, ok := c.Annotations[localFlagsHeadingKey]; !ok {
			c.Annotations[localFlagsHeadingKey] = "Flags"
		}
		width := max(minHelpWidth, ui.TerminalWidth(c.OutOrStdout())-2)
		c.Annotations[localUsageKey] = formatFlagUsages(c.LocalFlags(), width)
		c.Annotations[inheritedUsageKey] = formatFlagUsages(c.InheritedFlags(), width)
		defaultHelp(c, args)
	})
}

func formatFlagUsages(fs *pflag.FlagSet, width int) string {
	if fs == nil {
		return ""
	}
	usages := strings.ReplaceAll(fs.FlagUsagesWrapped(width), "\t", "  ")
	return strings.TrimRight(usages, "\n")
}
