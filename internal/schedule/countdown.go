package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrRaceInPast is returned when the race date is before today.
var ErrRaceInPast = errors.New("race date is in the past")

// Countdown describes where today falls relative to a plan ending on race
// day.
type Countdown struct {
	WeeksUntilRace     float64
	WeeksUntilTraining float64
	// Keep is the number of trailing plan weeks left when training has
	// already started. It equals the plan length otherwise.
	Keep int
}

// Started reports whether the first plan week is already behind us.
func (c Countdown) Started() bool {
	return c.WeeksUntilTraining <= 0
}

// NewCountdown computes the countdown for a plan of planWeeks weeks. Whole
// days are counted, any remaining hours are dropped.
func NewCountdown(race, now time.Time, planWeeks int) (Countdown, error) {
	days := float64(wholeDays(now, race))
	if truncateToDay(race).Before(truncateToDay(now)) {
		return Countdown{}, fmt.Errorf("%w: %s", ErrRaceInPast, race.Format("2006-01-02"))
	}

	c := Countdown{
		WeeksUntilRace:     days / 7,
		WeeksUntilTraining: (days - float64(7*planWeeks)) / 7,
		Keep:               planWeeks,
	}
	if c.Started() {
		c.Keep = min(int(c.WeeksUntilRace)+1, planWeeks)
	}
	return c, nil
}

// wholeDays counts the full days from now to race on the wall clock, so a
// daylight saving change in between does not cost a day.
func wholeDays(now, race time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(race.Year(), race.Month(), race.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	if clock(now) > clock(race) {
		days--
	}
	return days
}

func clock(t time.Time) time.Duration {
	return t.Sub(truncateToDay(t))
}

// Summary returns the countdown lines printed before a schedule.
func (c Countdown) Summary() []string {
	lines := []string{fmt.Sprintf("%4.1f weeks until the race", c.WeeksUntilRace)}
	if c.Started() {
		lines = append(lines, fmt.Sprintf("training has already started, trimming to the last %d weeks", c.Keep))
	} else {
		lines = append(lines, fmt.Sprintf("%4.1f weeks until training starts", c.WeeksUntilTraining))
	}
	return lines
}
