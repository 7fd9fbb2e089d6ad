package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/schedule"
	"github.com/Flyrell/trainplan/internal/stringutil"
	"github.com/Flyrell/trainplan/internal/workout"
)

// labelWidth is the width of "2006-01-02 Week NN:".
const labelWidth = 19

// renderTable lays dated weeks out as fixed-width text. When est is set a
// column with the estimated weekly training time is appended.
func renderTable(weeks []schedule.DatedWeek, est *workout.Estimator) string {
	labels := make([]string, len(weeks))
	rows := make([]plan.Week, len(weeks))
	for i, w := range weeks {
		labels[i] = w.Label()
		rows[i] = w.Week
	}
	return renderRows(labels, rows, est)
}

// renderPlanTable lays out an undated plan, numbering weeks from the start.
func renderPlanTable(p plan.Plan, est *workout.Estimator) string {
	labels := make([]string, len(p.Weeks))
	for i := range p.Weeks {
		labels[i] = fmt.Sprintf("Week %2d:", i+1)
	}
	return renderRows(labels, p.Weeks, est)
}

func renderRows(labels []string, weeks []plan.Week, est *workout.Estimator) string {
	widths := plan.ColumnWidths(weeks)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for i, name := range plan.DayNames {
		b.WriteString(" ")
		b.WriteString(stringutil.PadRight(name, widths[i]))
	}
	if est != nil {
		b.WriteString(" Total")
	}
	b.WriteString("\n")

	for i, w := range weeks {
		b.WriteString(stringutil.PadRight(labels[i], labelWidth))
		for slot, d := range w {
			b.WriteString(" ")
			b.WriteString(stringutil.PadRight(d.String(), widths[slot]))
		}
		if est != nil {
			b.WriteString(" ")
			b.WriteString(weekTotal(w, *est))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// weekTotal formats the estimated time of a week. A trailing "+" marks
// weeks with workouts that could not be estimated.
func weekTotal(w plan.Week, est workout.Estimator) string {
	total, failed := w.Duration(est)
	s := workout.FormatDuration(total)
	if failed > 0 {
		s += "+"
	}
	return s
}

func printTable(out io.Writer, weeks []schedule.DatedWeek, est *workout.Estimator) error {
	_, err := fmt.Fprint(out, renderTable(weeks, est))
	return err
}
