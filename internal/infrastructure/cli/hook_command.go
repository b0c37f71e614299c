package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Hook bodies for the shells' command-not-found entry points. Registration is
// the user's (or their dotfile manager's) job: the command only prints the
// snippet to paste or source.
const zshHook = `# terminai: suggest fixes for unresolved commands
command_not_found_handler() {
  terminai "$@"
  return $?
}
`

const bashHook = `# terminai: suggest fixes for unresolved commands
command_not_found_handle() {
  terminai "$@"
  return $?
}
`

func newHookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hook [zsh|bash]",
		Short: "Print the command-not-found hook for a shell",
		Long: `Print the shell function that routes unresolved commands to terminai.

Add the output to your shell rc file, e.g.:
  terminai hook zsh >> ~/.zshrc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			} else {
				shell = filepath.Base(os.Getenv("SHELL"))
			}
			switch strings.ToLower(shell) {
			case "zsh":
				fmt.Fprint(cmd.OutOrStdout(), zshHook)
			case "bash":
				fmt.Fprint(cmd.OutOrStdout(), bashHook)
			default:
				return fmt.Errorf("unsupported shell %q (want zsh or bash)", shell)
			}
			return nil
		},
	}
}
