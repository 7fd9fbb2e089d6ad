package cli

import (
	"fmt"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/spf13/cobra"
)

var plansShowCmd = LeafCommand{
	Use:   "show PLAN",
	Short: "Print a plan as a table or as a YAML/TOML document",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "totals", Usage: "add a column with the estimated weekly training time"},
	},
	StrFlags: []StringFlag{
		{Name: "format", Usage: "output format: table, yaml or toml", Default: "table"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		var est *workout.Estimator
		if totals, _ := cmd.Flags().GetBool("totals"); totals {
			e := env.estimator()
			est = &e
		}
		return runPlansShow(cmd, env.catalog, args[0], format, est)
	},
}.Build()

func runPlansShow(cmd *cobra.Command, catalog *plan.Catalog, name, format string, est *workout.Estimator) error {
	p, err := catalog.Get(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch format {
	case "table":
		_, err = fmt.Fprint(out, renderPlanTable(p, est))
		return err
	case string(plan.FormatYAML), string(plan.FormatTOML):
		return plan.Encode(out, p, plan.Format(format))
	default:
		return fmt.Errorf("unsupported format '%s' (valid: table, yaml, toml)", format)
	}
}
