package cli

import (
	"fmt"

	"github.com/Flyrell/trainplan/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:       "set KEY VALUE",
	Short:     "Change a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFile(cmd)
		if err != nil {
			return err
		}
		return runConfigSet(cmd, path, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, path, key, value string) error {
	if err := config.Set(path, key, value); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", Primary(key), value)))
	return nil
}
