package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/schedule"
	"go.uber.org/zap"
)

// planOptions selects a plan, optionally overlaid with a second one.
type planOptions struct {
	name   string
	merge  string
	offset int
	shift  bool
}

// resolvePlan fetches the named plan and applies the overlay, if any.
func resolvePlan(catalog *plan.Catalog, opts planOptions) (plan.Plan, error) {
	p, err := catalog.Get(opts.name)
	if err != nil {
		return plan.Plan{}, err
	}
	if opts.merge == "" {
		return p, nil
	}

	other, err := catalog.Get(opts.merge)
	if err != nil {
		return plan.Plan{}, err
	}
	var transform func(plan.Week) plan.Week
	if opts.shift {
		transform = plan.ShiftForOverlay
	}
	merged, err := p.Overlay(other, opts.offset, transform)
	if err != nil {
		return plan.Plan{}, err
	}
	merged.Name = p.Name + "+" + other.Name
	return merged, nil
}

// resolveRaceDate parses value, asking for it when empty and a terminal is
// attached.
func resolveRaceDate(value string, interactive bool, prompt PromptFunc, now time.Time) (time.Time, error) {
	if value == "" {
		if !interactive || prompt == nil {
			return time.Time{}, fmt.Errorf("--date is required")
		}
		answer, err := prompt("Race date (e.g. 2028-04-16, Apr 16, next sunday)")
		if err != nil {
			return time.Time{}, err
		}
		value = answer
	}
	return schedule.ParseDateWithNow(value, now)
}

// datedPlan is a plan anchored to a race date.
type datedPlan struct {
	plan      plan.Plan
	race      time.Time
	countdown schedule.Countdown
	weeks     []schedule.DatedWeek
}

// anchor computes the countdown, drops weeks that are already behind us and
// dates the rest.
func anchor(p plan.Plan, race, now time.Time, log *zap.Logger) (datedPlan, error) {
	c, err := schedule.NewCountdown(race, now, p.Len())
	if err != nil {
		return datedPlan{}, err
	}
	if c.Started() {
		log.Debug("trimming plan", zap.Int("weeks", p.Len()), zap.Int("keep", c.Keep))
		p = p.Tail(c.Keep)
	}
	weeks, err := schedule.Expand(p, race)
	if err != nil {
		return datedPlan{}, err
	}
	return datedPlan{plan: p, race: race, countdown: c, weeks: weeks}, nil
}
