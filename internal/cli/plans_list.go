package cli

import (
	"fmt"
	"sort"

	"github.com/Flyrell/trainplan/internal/library"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/stringutil"
	"github.com/spf13/cobra"
)

var plansListCmd = LeafCommand{
	Use:   "list",
	Short: "List built-in and imported plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		idx, err := library.ReadIndex(env.homeDir)
		if err != nil {
			return err
		}
		return runPlansList(cmd, env.catalog, idx)
	},
}.Build()

func runPlansList(cmd *cobra.Command, catalog *plan.Catalog, idx *library.Index) error {
	out := cmd.OutOrStdout()

	var builtin []plan.Plan
	nameWidth := 0
	for _, name := range catalog.Names() {
		if !catalog.IsBuiltin(name) {
			continue
		}
		p, err := catalog.Get(name)
		if err != nil {
			return err
		}
		builtin = append(builtin, p)
		nameWidth = max(nameWidth, len(name))
	}
	for _, e := range idx.Plans {
		nameWidth = max(nameWidth, len(e.Name))
	}

	_, _ = fmt.Fprintln(out, Info("Built-in plans"))
	for _, p := range builtin {
		_, _ = fmt.Fprintf(out, "  %s  %s  %s\n",
			Primary(stringutil.PadRight(p.Name, nameWidth)),
			stringutil.PadRight(p.Sport, 8),
			weeksLabel(p.Len()))
	}

	aliases := plan.Aliases()
	names := make([]string, 0, len(aliases))
	for a := range aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	_, _ = fmt.Fprintln(out, Info("Aliases"))
	for _, a := range names {
		_, _ = fmt.Fprintf(out, "  %s  -> %s\n", Primary(stringutil.PadRight(a, nameWidth)), aliases[a])
	}

	if len(idx.Plans) == 0 {
		_, _ = fmt.Fprintln(out, Silent("No imported plans (use 'trainplan plans import FILE')"))
		return nil
	}
	_, _ = fmt.Fprintln(out, Info("Library"))
	for _, e := range idx.Plans {
		_, _ = fmt.Fprintf(out, "  %s  %s  %s  %s\n",
			Primary(stringutil.PadRight(e.Name, nameWidth)),
			stringutil.PadRight(e.Sport, 8),
			weeksLabel(e.Weeks),
			Silent("imported "+e.ImportedAt.Format("2006-01-02")))
	}
	return nil
}

func weeksLabel(n int) string {
	if n == 1 {
		return " 1 week"
	}
	return fmt.Sprintf("%2d weeks", n)
}

