package cli

import "github.com/spf13/cobra"

var plansCmd = GroupCommand{
	Use:   "plans",
	Short: "List, show, import and remove training plans",
	Subcommands: []*cobra.Command{
		plansListCmd,
		plansShowCmd,
		plansImportCmd,
		plansRemoveCmd,
	},
}.Build()
