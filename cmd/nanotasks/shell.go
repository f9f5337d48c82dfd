package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/nanotasks/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read task commands line by line from stdin",
	Long: `Read task commands from stdin and print the list after every change.

Commands:
  add <text> [#category]     Add a regular task
  urgent <text> [@deadline]  Add an urgent task
  toggle <n>                 Toggle completion of task n
  delete <n>                 Delete task n
  list                       Print the list
  stats                      Print summary counts
  export [path] [format]     Export the list
  quit                       Leave the shell

Examples:
  nanotasks shell
  printf 'add Buy milk #errand\nlist\n' | nanotasks shell --format markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		sh, err := shell.New(session, cmd.OutOrStdout(), interactive)
		if err != nil {
			return err
		}
		return sh.Run(cmd.Context(), cmd.InOrStdin())
	},
}
