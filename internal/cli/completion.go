package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = LeafCommand{
	Use:   "completion [SHELL]",
	Short: "Print a shell completion script",
	Long: `Print a shell completion script for bash, zsh, fish or powershell.
Without SHELL the shell is taken from $SHELL.

  eval "$(trainplan completion bash)"`,
	Args:      cobra.RangeArgs(0, 1),
	ValidArgs: validShells,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := ""
		if len(args) > 0 {
			shell = args[0]
		} else {
			shell = detectShell()
			if shell == "" {
				return fmt.Errorf("could not detect shell from $SHELL; please specify one explicitly (bash, zsh, fish, powershell)")
			}
		}
		return runCompletion(cmd, shell)
	},
}.Build()

// detectShell maps $SHELL to a supported shell name.
func detectShell() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	case "pwsh", "powershell":
		return "powershell"
	default:
		return ""
	}
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}
