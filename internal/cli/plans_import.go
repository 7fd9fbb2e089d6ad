package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/trainplan/internal/library"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var plansImportCmd = LeafCommand{
	Use:   "import FILE",
	Short: "Add a YAML or TOML plan document to your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runPlansImport(cmd, env, args[0], time.Now)
	},
}.Build()

func runPlansImport(cmd *cobra.Command, env runEnv, src string, nowFn func() time.Time) error {
	builtin, err := plan.Builtin()
	if err != nil {
		return err
	}

	res, err := library.Import(env.homeDir, src, builtin.IsBuiltin, nowFn())
	if err != nil {
		return err
	}
	env.log.Debug("plan imported",
		zap.String("name", res.Entry.Name),
		zap.String("digest", res.Entry.Digest),
		zap.Bool("created", res.Created))

	out := cmd.OutOrStdout()
	name := Primary(res.Entry.Name)
	switch {
	case res.Unchanged:
		_, _ = fmt.Fprintf(out, "%s\n", Text(fmt.Sprintf("plan '%s' is already up to date", name)))
	case res.Created:
		_, _ = fmt.Fprintf(out, "%s\n", Text(fmt.Sprintf("plan '%s' imported (%s)", name, strings.TrimSpace(weeksLabel(res.Entry.Weeks)))))
	default:
		_, _ = fmt.Fprintf(out, "%s\n", Text(fmt.Sprintf("plan '%s' updated (%s)", name, strings.TrimSpace(weeksLabel(res.Entry.Weeks)))))
	}
	return nil
}
