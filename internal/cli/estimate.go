package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/trainplan/internal/stringutil"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/spf13/cobra"
)

var estimateCmd = LeafCommand{
	Use:   "estimate LABEL...",
	Short: "Estimate how long workouts take, e.g. 'Run 5 miles' or 'Bike 60 min'",
	Args:  cobra.MinimumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "total", Usage: "print the sum of all estimates"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		total, _ := cmd.Flags().GetBool("total")
		return runEstimate(cmd, env.estimator(), args, total)
	},
}.Build()

func runEstimate(cmd *cobra.Command, est workout.Estimator, labels []string, showTotal bool) error {
	out := cmd.OutOrStdout()

	width := 0
	for _, l := range labels {
		width = max(width, len(l))
	}

	var total time.Duration
	failed := 0
	for _, l := range labels {
		d, err := estimateLabel(est, l)
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "%s  %s\n", stringutil.PadRight(l, width), Error(err.Error()))
			continue
		}
		total += d
		_, _ = fmt.Fprintf(out, "%s  %s\n", stringutil.PadRight(l, width), workout.FormatDuration(d))
	}
	if showTotal {
		_, _ = fmt.Fprintf(out, "%s  %s\n", stringutil.PadRight("Total", width), Primary(workout.FormatDuration(total)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d workouts could not be estimated", failed, len(labels))
	}
	return nil
}

// estimateLabel estimates a label as written. Labels that name no activity
// but use the running table shorthand ("8", "5 mi pace", "10-K Race") are
// read as runs.
func estimateLabel(est workout.Estimator, label string) (time.Duration, error) {
	d, err := est.Estimate(workout.New(label, ""))
	if !errors.Is(err, workout.ErrUnknownActivity) {
		return d, err
	}
	it, ok := workout.NormalizeRun(label)
	if !ok || !runShorthand(label, it) {
		return d, err
	}
	if nd, nerr := est.Estimate(it); nerr == nil {
		return nd, nil
	}
	return d, err
}

// runShorthand reports whether label is a bare distance or was rewritten by
// NormalizeRun beyond the "Run " prefix.
func runShorthand(label string, it workout.Item) bool {
	label = strings.TrimSpace(label)
	if _, err := strconv.ParseFloat(label, 64); err == nil {
		return true
	}
	return it.Summary != "Run "+label
}
