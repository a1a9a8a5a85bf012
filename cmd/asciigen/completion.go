// completion.go adds tab completion to asciigen: the 'completion' command
// prints the script for a shell, and --font completes from the font catalog.
package main

import (
	"fmt"
	"strings"

	"github.com/example/asciigen/internal/figlet"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func newCompletionCommand(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Print a tab-completion script for asciigen",
		Long: `Print a script that teaches your shell to complete asciigen commands and flags,
including the font names accepted by --font. Load it in the current session or
install it wherever your shell picks up completions.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("no completion script for shell %q", args[0])
			}
		},
	}
	cmd.Example = `  # Complete "asciigen -f sl<TAB>" in this bash session
  source <(asciigen completion bash)

  # Install for zsh
  asciigen completion zsh > "${fpath[1]}/_asciigen"`
	return cmd
}

// registerFontCompletion completes --font with the catalog's font names.
func registerFontCompletion(cmd *cobra.Command, a *app) {
	_ = cmd.RegisterFlagCompletionFunc("font", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		catalog := figlet.NewCatalog(a.opts.FontDirs, logr.Discard())
		prefix := strings.ToLower(toComplete)
		var names []string
		for _, name := range catalog.Fonts() {
			if strings.HasPrefix(strings.ToLower(name), prefix) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
