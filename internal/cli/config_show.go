package cli

import (
	"fmt"

	"github.com/Flyrell/trainplan/internal/config"
	"github.com/Flyrell/trainplan/internal/stringutil"
	"github.com/spf13/cobra"
)

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFile(cmd)
		if err != nil {
			return err
		}
		return runConfigShow(cmd, path)
	},
}.Build()

func runConfigShow(cmd *cobra.Command, path string) error {
	s, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, Silent("# "+path))
	width := 0
	for _, kv := range s.Values() {
		width = max(width, len(kv[0]))
	}
	for _, kv := range s.Values() {
		_, _ = fmt.Fprintf(out, "%s = %s\n", Primary(stringutil.PadRight(kv[0], width)), kv[1])
	}
	return nil
}
