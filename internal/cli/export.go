package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/trainplan/internal/workout"
)

// exportSchedule writes the dated plan to path in the given format.
func exportSchedule(format, path string, dp datedPlan, est workout.Estimator) error {
	switch format {
	case "pdf":
		return renderSchedulePDF(dp, est, path)
	case "html":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := renderScheduleHTML(f, dp, est); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported export format '%s' (valid: pdf, html)", format)
	}
}

// durationLabel formats an estimated duration, or "?" when unknown.
func durationLabel(d time.Duration, err error) string {
	if err != nil {
		return "?"
	}
	return workout.FormatDuration(d)
}
