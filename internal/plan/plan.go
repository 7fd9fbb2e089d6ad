package plan

import (
	"errors"
	"fmt"
)

// Plan is a named training program: a list of weeks ending in race week.
type Plan struct {
	Name   string
	Sport  string
	Source string
	Weeks  []Week
}

// Len returns the number of weeks.
func (p Plan) Len() int {
	return len(p.Weeks)
}

// Clone returns a deep copy so callers can edit weeks freely.
func (p Plan) Clone() Plan {
	out := p
	out.Weeks = make([]Week, len(p.Weeks))
	for i, w := range p.Weeks {
		out.Weeks[i] = w.clone()
	}
	return out
}

// Tail returns a copy holding only the last n weeks.
func (p Plan) Tail(n int) Plan {
	out := p.Clone()
	if n < 0 {
		n = 0
	}
	if n < len(out.Weeks) {
		out.Weeks = out.Weeks[len(out.Weeks)-n:]
	}
	return out
}

// ColumnWidths returns the printed width of each weekday column, the widest
// cell of that weekday across every week.
func (p Plan) ColumnWidths() [DaysPerWeek]int {
	return ColumnWidths(p.Weeks)
}

// ColumnWidths computes per-weekday column widths for a list of weeks.
func ColumnWidths(weeks []Week) [DaysPerWeek]int {
	var widths [DaysPerWeek]int
	for i := range widths {
		widths[i] = len(DayNames[i])
	}
	for _, w := range weeks {
		for i, d := range w {
			if dw := d.Width(); dw > widths[i] {
				widths[i] = dw
			}
		}
	}
	return widths
}

// Overlay merges other into p starting at week offset. p is padded with rest
// weeks when other runs past its end. transform, when non-nil, is applied to
// each week of other before merging.
func (p Plan) Overlay(other Plan, offset int, transform func(Week) Week) (Plan, error) {
	if offset < 0 {
		return Plan{}, fmt.Errorf("overlay offset must not be negative, got %d", offset)
	}

	out := p.Clone()
	for len(out.Weeks) < offset+len(other.Weeks) {
		out.Weeks = append(out.Weeks, RestWeek())
	}

	for i, w := range other.Weeks {
		w = w.clone()
		if transform != nil {
			w = transform(w)
		}
		out.Weeks[offset+i] = w.Merge(out.Weeks[offset+i])
	}
	return out, nil
}

// ErrEmptyPlan is returned by operations that need at least one week.
var ErrEmptyPlan = errors.New("plan has no weeks")

// ToFiveDays rearranges a seven-day running table so the long run lands on
// Saturday and Sunday is always off: Monday's cross training is dropped,
// every other day moves one slot earlier, and Thursday is forced to rest
// when the source week trains on more than five days. The Saturday of the
// final week becomes the race.
func (p Plan) ToFiveDays() (Plan, error) {
	if len(p.Weeks) == 0 {
		return Plan{}, ErrEmptyPlan
	}

	out := p.Clone()
	for i, w := range out.Weeks {
		thursday := w[4]
		if w.TrainingDays() > 5 {
			thursday = Rest()
		}
		out.Weeks[i] = Week{w[1], w[2], w[3], thursday, w[5], w[6], Rest()}
	}

	last := len(out.Weeks) - 1
	out.Weeks[last][5] = RaceDay()
	return out, nil
}
