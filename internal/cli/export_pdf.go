package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/trainplan/internal/calendar"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfRaceColor   = props.Color{Red: 255, Green: 140, Blue: 0}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// buildSchedulePDF lays the schedule out as one section per week with a
// row per day.
func buildSchedulePDF(dp datedPlan, est workout.Estimator) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, dp.plan.Name, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Race day "+dp.race.Format("Monday, January 2 2006"), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	var grandTotal time.Duration
	for _, w := range dp.weeks {
		total, failed := w.Week.Duration(est)
		grandTotal += total
		totalLabel := workout.FormatDuration(total)
		if failed > 0 {
			totalLabel += "+"
		}

		m.AddRow(8,
			text.NewCol(9, fmt.Sprintf("Week %d, %s", w.Number, w.Start.Format("January 2")), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, totalLabel, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, ds := range calendar.Days(w, est) {
			m.AddRow(6, pdfDayCols(ds)...)
			if desc := ds.Day.Description(); desc != "" && desc != ds.Day.Summary() {
				m.AddRow(5,
					text.NewCol(3, ""),
					text.NewCol(9, desc, props.Text{
						Size:  8,
						Color: &pdfMutedColor,
					}),
				)
			}
		}

		m.AddRow(4)
	}

	// Grand total footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, workout.FormatDuration(grandTotal), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	return m
}

func pdfDayCols(ds calendar.DaySlot) []core.Col {
	date := "  " + ds.Date.Format("Mon Jan 2")
	switch {
	case ds.Day.IsRest():
		muted := props.Text{Size: 9, Color: &pdfMutedColor}
		return []core.Col{
			text.NewCol(3, date, muted),
			text.NewCol(9, "Rest", muted),
		}
	case ds.Day.HasRace() && len(ds.Day.Workouts()) == 0:
		race := props.Text{Size: 9, Style: fontstyle.Bold, Color: &pdfRaceColor}
		return []core.Col{
			text.NewCol(3, date, race),
			text.NewCol(9, ds.Day.String(), race),
		}
	}
	return []core.Col{
		text.NewCol(3, date, props.Text{Size: 9}),
		text.NewCol(6, ds.Day.String(), props.Text{Size: 9}),
		text.NewCol(3, durationLabel(ds.Duration, ds.Err), props.Text{
			Size:  9,
			Align: align.Right,
		}),
	}
}

// renderSchedulePDF generates the schedule PDF and saves it to outputPath.
func renderSchedulePDF(dp datedPlan, est workout.Estimator, outputPath string) error {
	doc, err := buildSchedulePDF(dp, est).Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(outputPath)
}
