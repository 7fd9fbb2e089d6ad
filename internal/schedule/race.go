package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/Flyrell/trainplan/internal/plan"
)

// DatedWeek is a plan week anchored to the calendar.
type DatedWeek struct {
	Number int       // counts down to 1 in race week
	Start  time.Time // Monday
	Week   plan.Week
}

// Label returns the row label used in tables, e.g. "2027-04-12 Week  1:".
func (w DatedWeek) Label() string {
	return WeekLabel(w.Start, w.Number)
}

// Date returns the calendar day of a slot in the week, Monday being 0.
func (w DatedWeek) Date(slot int) time.Time {
	return w.Start.AddDate(0, 0, slot)
}

// WeekLabel formats a week row label.
func WeekLabel(start time.Time, number int) string {
	return fmt.Sprintf("%s Week %2d:", start.Format("2006-01-02"), number)
}

// RaceWeek returns the Monday of race week: the Monday on or before the day
// before the race, so a Monday race belongs to the previous week.
func RaceWeek(race time.Time) time.Time {
	d := truncateToDay(race).AddDate(0, 0, -1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// WeekStarts returns n consecutive Mondays, the last one being raceWeek.
func WeekStarts(raceWeek time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	first := raceWeek.AddDate(0, 0, -7*(n-1))
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: first,
		Count:   n,
	})
	if err != nil {
		return nil, fmt.Errorf("building weekly rule: %w", err)
	}
	return r.All(), nil
}

// Expand anchors every week of p to the calendar so that the last week is
// race week.
func Expand(p plan.Plan, race time.Time) ([]DatedWeek, error) {
	starts, err := WeekStarts(RaceWeek(race), p.Len())
	if err != nil {
		return nil, err
	}
	out := make([]DatedWeek, len(starts))
	for i, start := range starts {
		out[i] = DatedWeek{
			Number: p.Len() - i,
			Start:  start,
			Week:   p.Weeks[i],
		}
	}
	return out, nil
}
