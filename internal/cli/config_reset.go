package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Flyrell/trainplan/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFile(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		kit := NewPromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
		return runConfigReset(cmd, path, ResolveConfirmFunc(yes, kit))
	},
}.Build()

func runConfigReset(cmd *cobra.Command, path string, confirm ConfirmFunc) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("settings are already the defaults"))
		return nil
	}

	confirmed, err := confirm(fmt.Sprintf("Delete %s and restore the defaults?", path))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := config.Reset(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("settings reset to defaults"))
	return nil
}
