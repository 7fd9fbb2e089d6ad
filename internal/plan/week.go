package plan

import (
	"fmt"
	"time"

	"github.com/Flyrell/trainplan/internal/workout"
)

// DaysPerWeek is the number of slots in a Week.
const DaysPerWeek = 7

// DayNames are the column headers of a week, Monday first.
var DayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Week is seven days starting on Monday.
type Week [DaysPerWeek]Day

// NewWeek builds a week from exactly seven days.
func NewWeek(days ...Day) (Week, error) {
	var w Week
	if len(days) != DaysPerWeek {
		return w, fmt.Errorf("a week has %d days, got %d", DaysPerWeek, len(days))
	}
	copy(w[:], days)
	return w, nil
}

// RestWeek returns a week without any training.
func RestWeek() Week {
	return Week{}
}

// Day returns the day for a weekday.
func (w Week) Day(wd time.Weekday) Day {
	return w[index(wd)]
}

// Merge overlays other onto w day by day.
func (w Week) Merge(other Week) Week {
	var out Week
	for i := range w {
		out[i] = w[i].Merge(other[i])
	}
	return out
}

// Shift moves every day n slots later in the week. Days pushed past Sunday
// are dropped and the vacated days become rest. Negative n shifts earlier.
func (w Week) Shift(n int) Week {
	var out Week
	for i := range w {
		j := i + n
		if j < 0 || j >= DaysPerWeek {
			continue
		}
		out[j] = w[i].clone()
	}
	return out
}

// Swap exchanges two days.
func (w Week) Swap(i, j int) Week {
	w[i], w[j] = w[j], w[i]
	return w
}

// TrainingDays counts days that are not rest.
func (w Week) TrainingDays() int {
	n := 0
	for _, d := range w {
		if !d.IsRest() {
			n++
		}
	}
	return n
}

// Duration sums the estimated training time of the week. Days that cannot
// be estimated are skipped and reported through the returned error count.
func (w Week) Duration(est workout.Estimator) (time.Duration, int) {
	var total time.Duration
	failed := 0
	for _, d := range w {
		dur, err := d.Duration(est)
		if err != nil {
			failed++
			continue
		}
		total += dur
	}
	return total, failed
}

// Equal compares two weeks day by day.
func (w Week) Equal(other Week) bool {
	for i := range w {
		if !w[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (w Week) clone() Week {
	var out Week
	for i := range w {
		out[i] = w[i].clone()
	}
	return out
}

// index maps time.Weekday (Sunday=0) onto the Monday-first slot index.
func index(wd time.Weekday) int {
	return (int(wd) + 6) % DaysPerWeek
}
