package plan

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Flyrell/trainplan/internal/workout"
)

// ParseHal parses a tab-delimited running table in the layout published by
// Hal Higdon: one row per week, the week number followed by seven cells from
// Monday to Sunday. Blank lines are skipped; a leading "# <url>" comment is
// kept as the plan source.
func ParseHal(name, text string) (Plan, error) {
	p := Plan{Name: name, Sport: "running"}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if p.Source == "" {
				p.Source = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		cells := strings.Split(line, "\t")
		if len(cells) != DaysPerWeek+1 {
			return Plan{}, fmt.Errorf("%s line %d: expected week number and %d days, got %d cells",
				name, lineNo, DaysPerWeek, len(cells))
		}

		var w Week
		for i, cell := range cells[1:] {
			if it, ok := workout.NormalizeRun(cell); ok {
				w[i] = Of(it)
			}
		}
		p.Weeks = append(p.Weeks, w)
	}
	if err := scanner.Err(); err != nil {
		return Plan{}, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(p.Weeks) == 0 {
		return Plan{}, fmt.Errorf("%s: %w", name, ErrEmptyPlan)
	}

	return p, nil
}
