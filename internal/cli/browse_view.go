package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/stringutil"
)

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n\n")

	// Header row
	b.WriteString(strings.Repeat(" ", labelWidth))
	for i, name := range plan.DayNames {
		b.WriteString(" ")
		b.WriteString(headerStyle.Render(stringutil.PadRight(name, m.widths[i])))
	}
	b.WriteString("\n")

	// Week rows (respecting vertical scroll)
	end := m.scrollY + m.visibleRows()
	if end > len(m.weeks) {
		end = len(m.weeks)
	}
	for row := m.scrollY; row < end; row++ {
		w := m.weeks[row]
		b.WriteString(w.Label())
		for slot, d := range w.Week {
			b.WriteString(" ")
			cell := stringutil.PadRight(d.String(), m.widths[slot])
			switch {
			case row == m.cursorRow && slot == m.cursorCol:
				cell = selectedStyle.Render(cell)
			case d.HasRace():
				cell = raceStyle.Render(cell)
			case sameDay(w.Date(slot), m.today):
				cell = todayStyle.Render(cell)
			case d.IsRest():
				cell = restStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("weeks %d-%d of %d | ←/→/↑/↓ navigate | g/G first/last | t today | q quit",
		m.scrollY+1, end, len(m.weeks))))
	return b.String()
}

// detail describes the selected day.
func (m browseModel) detail() string {
	if len(m.weeks) == 0 {
		return "\n"
	}
	w := m.weeks[m.cursorRow]
	d := w.Week[m.cursorCol]
	date := w.Date(m.cursorCol)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s, week %d", date.Format("Monday, January 2 2006"), w.Number)))
	b.WriteString("\n")

	switch {
	case d.IsRest():
		b.WriteString(Silent("Rest day"))
		b.WriteString("\n")
		return b.String()
	case d.HasRace() && len(d.Workouts()) == 0:
		b.WriteString(raceStyle.Render(d.String()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(d.Summary())
	b.WriteString("\n")
	if desc := d.Description(); desc != "" && desc != d.Summary() {
		b.WriteString(Silent(desc))
		b.WriteString("\n")
	}
	dur, err := d.Duration(m.est)
	if err != nil {
		b.WriteString(Warning("Estimated time unknown: " + err.Error()))
	} else {
		b.WriteString("Estimated time " + Primary(durationLabel(dur, nil)))
	}
	b.WriteString("\n")
	return b.String()
}
