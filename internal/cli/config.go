package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Show and change start times, reminders, time zone and workout rates",
	Subcommands: []*cobra.Command{
		configShowCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()

// configFile resolves the config path for the config subcommands.
func configFile(cmd *cobra.Command) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return configPathFor(cmd, homeDir), nil
}
