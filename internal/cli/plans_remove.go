package cli

import (
	"fmt"

	"github.com/Flyrell/trainplan/internal/library"
	"github.com/spf13/cobra"
)

var plansRemoveCmd = LeafCommand{
	Use:   "remove [PLAN]",
	Short: "Remove imported plans from your library",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		kit := NewPromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
		return runPlansRemove(cmd, env.homeDir, args, kit, ResolveConfirmFunc(yes, kit))
	},
}.Build()

func runPlansRemove(cmd *cobra.Command, homeDir string, args []string, kit PromptKit, confirm ConfirmFunc) error {
	idx, err := library.ReadIndex(homeDir)
	if err != nil {
		return err
	}

	var names []string
	if len(args) > 0 {
		if library.Find(idx, args[0]) == nil {
			return fmt.Errorf("plan '%s' is not in the library", args[0])
		}
		names = args
	} else {
		if len(idx.Plans) == 0 {
			return fmt.Errorf("no imported plans to remove")
		}
		options := make([]string, len(idx.Plans))
		for i, e := range idx.Plans {
			options[i] = e.Name
		}
		picked, err := kit.MultiSelect("Plans to remove", options)
		if err != nil {
			return err
		}
		for _, i := range picked {
			names = append(names, options[i])
		}
		if len(names) == 0 {
			return fmt.Errorf("no plans selected")
		}
	}

	for _, name := range names {
		confirmed, err := confirm(fmt.Sprintf("Remove plan '%s' from the library?", name))
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("aborted")
		}

		e, err := library.Remove(homeDir, name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("plan '%s' removed", Primary(e.Name))))
	}
	return nil
}
