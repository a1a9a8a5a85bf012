// File: cmd/asciigen/shell.go
// Brief: CLI command wiring and implementation for 'shell'.

package main

import (
	"github.com/example/asciigen/internal/shell"
	"github.com/spf13/cobra"
)

func newShellCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shell",
		Short:         "Open the interactive asciigen shell",
		Long:          "Open the interactive shell. Type 'help' inside it to list the commands.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
	decorateCommandHelp(cmd, "Shell Flags")
	return cmd
}

func (a *app) runShell(cmd *cobra.Command) error {
	sh, err := shell.New(shell.Options{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
		Config:     a.opts.Config(),
		ConfigPath: a.configFile,
		Renderer:   a.renderer,
		Logger:     a.log.WithName("shell"),
	})
	if err != nil {
		return err
	}
	return sh.Run(cmd.Context())
}
