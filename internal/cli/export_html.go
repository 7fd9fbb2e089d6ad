package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlPage = template.Must(template.New("schedule").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #323232; }
table { border-collapse: collapse; }
th, td { border: 1px solid #c8c8c8; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Subtitle}}</p>
{{.Table}}
</body>
</html>
`))

// scheduleMarkdown renders the dated plan as a Markdown table with a week
// total column.
func scheduleMarkdown(dp datedPlan, est workout.Estimator) string {
	var b strings.Builder
	b.WriteString("| Week |")
	for _, name := range plan.DayNames {
		b.WriteString(" " + name + " |")
	}
	b.WriteString(" Total |\n|---|")
	for range plan.DayNames {
		b.WriteString("---|")
	}
	b.WriteString("---|\n")

	for _, w := range dp.weeks {
		fmt.Fprintf(&b, "| %d (%s) |", w.Number, w.Start.Format("Jan 2"))
		for _, d := range w.Week {
			cell := markdownCell(d.String())
			if d.HasRace() {
				cell = "**" + cell + "**"
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString(" " + weekTotal(w.Week, est) + " |\n")
	}
	return b.String()
}

// markdownCell escapes characters that would break a table cell.
func markdownCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "-" {
		return `\-`
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderScheduleHTML converts the Markdown table to HTML and wraps it in a
// standalone page.
func renderScheduleHTML(w io.Writer, dp datedPlan, est workout.Estimator) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var table bytes.Buffer
	if err := md.Convert([]byte(scheduleMarkdown(dp, est)), &table); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return htmlPage.Execute(w, struct {
		Title    string
		Subtitle string
		Table    template.HTML
	}{
		Title:    dp.plan.Name,
		Subtitle: "Race day " + dp.race.Format("Monday, January 2 2006"),
		Table:    template.HTML(table.String()),
	})
}
