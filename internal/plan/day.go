package plan

import (
	"strings"
	"time"

	"github.com/Flyrell/trainplan/internal/workout"
)

// Day holds the workouts scheduled on one calendar day. A day without
// workouts is a rest day.
type Day struct {
	Items []workout.Item
}

// Rest returns an empty day.
func Rest() Day {
	return Day{}
}

// RaceDay returns a day holding only the race.
func RaceDay() Day {
	return Of(workout.Race())
}

// Of builds a day from items, dropping rest placeholders.
func Of(items ...workout.Item) Day {
	var d Day
	for _, it := range items {
		if it.IsRest() {
			continue
		}
		d.Items = append(d.Items, it)
	}
	return d
}

// IsRest reports whether nothing is scheduled.
func (d Day) IsRest() bool {
	return len(d.Items) == 0
}

// HasRace reports whether the race falls on this day.
func (d Day) HasRace() bool {
	for _, it := range d.Items {
		if it.IsRace() {
			return true
		}
	}
	return false
}

// Workouts returns the items that need training time: everything except
// the race.
func (d Day) Workouts() []workout.Item {
	var out []workout.Item
	for _, it := range d.Items {
		if !it.IsRace() {
			out = append(out, it)
		}
	}
	return out
}

// Merge returns a day holding the workouts of d followed by those of other.
func (d Day) Merge(other Day) Day {
	merged := make([]workout.Item, 0, len(d.Items)+len(other.Items))
	merged = append(merged, d.Items...)
	merged = append(merged, other.Items...)
	return Of(merged...)
}

// String renders the day for a table cell.
func (d Day) String() string {
	if d.IsRest() {
		return workout.RestLabel
	}
	return joinSummaries(d.Items)
}

// Summary is the calendar title for the training on this day, or "" when
// there is nothing to train.
func (d Day) Summary() string {
	return joinSummaries(d.Workouts())
}

// Description joins the item descriptions, one per line.
func (d Day) Description() string {
	items := d.Workouts()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Description
		if parts[i] == "" {
			parts[i] = it.Summary
		}
	}
	return strings.Join(parts, "\n")
}

// Width is the printed width of the day, never below workout.MinWidth.
func (d Day) Width() int {
	if d.IsRest() {
		return workout.MinWidth
	}
	return workout.New(d.String(), "").Width(workout.MinWidth)
}

// Duration sums the estimated time of every workout. The first estimation
// failure is returned.
func (d Day) Duration(est workout.Estimator) (time.Duration, error) {
	var total time.Duration
	for _, it := range d.Workouts() {
		dur, err := est.Estimate(it)
		if err != nil {
			return 0, err
		}
		total += dur
	}
	return total, nil
}

// Equal compares the items of two days in order.
func (d Day) Equal(other Day) bool {
	if len(d.Items) != len(other.Items) {
		return false
	}
	for i := range d.Items {
		if !d.Items[i].Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

func (d Day) clone() Day {
	if d.Items == nil {
		return Day{}
	}
	items := make([]workout.Item, len(d.Items))
	copy(items, d.Items)
	return Day{Items: items}
}

func joinSummaries(items []workout.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = strings.TrimSpace(it.Summary)
	}
	return strings.Join(parts, " + ")
}
