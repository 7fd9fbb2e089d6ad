package plan

import (
	"fmt"

	"github.com/Flyrell/trainplan/internal/workout"
)

// ShiftForOverlay prepares a five-day running week for overlaying onto a
// triathlon week: a rest day is prepended (dropping Sunday) and the Friday
// and Saturday sessions trade places.
func ShiftForOverlay(w Week) Week {
	return w.Shift(1).Swap(4, 5)
}

// rawWacky overlays the default marathon plan onto the olympic triathlon,
// starting two weeks into the triathlon.
func rawWacky(c *Catalog) (Plan, error) {
	tri, err := c.Get("olympic")
	if err != nil {
		return Plan{}, err
	}
	marathon, err := c.Get(DefaultMarathon)
	if err != nil {
		return Plan{}, err
	}

	p, err := tri.Overlay(marathon, 2, ShiftForOverlay)
	if err != nil {
		return Plan{}, err
	}
	p.Name = "rawwacky"
	p.Sport = "hybrid"
	p.Source = ""
	return p, nil
}

// wackyLongRuns are the Sunday runs of the overlapping weeks.
var wackyLongRuns = []string{
	"Run 7 miles",
	"Run 7 miles",
	"Run 5.5 miles",
	"Run 9 miles",
	"Run 9.5 miles",
	"Run 6.5 miles",
	"Run 10 miles",
	"Run 11 miles",
	"Run 8.5 miles",
}

// Hybrid picks sessions from a running week and a triathlon week:
// rest, run Mon, tri Wed, run Wed, tri Fri, tri Sat, long run.
func Hybrid(run, tri Week, long Day) Week {
	return Week{
		Rest(),
		run[0].clone(),
		tri[2].clone(),
		run[2].clone(),
		tri[4].clone(),
		tri[5].clone(),
		long,
	}
}

// wacky is a reduced hybrid: the first two triathlon weeks, nine mixed
// weeks, the triathlon race week, then the end of the marathon plan.
func wacky(c *Catalog) (Plan, error) {
	tri, err := c.Get("olympic")
	if err != nil {
		return Plan{}, err
	}
	marathon, err := c.Get(DefaultMarathon)
	if err != nil {
		return Plan{}, err
	}
	if tri.Len() < len(wackyLongRuns)+3 || marathon.Len() < len(wackyLongRuns)+8 {
		return Plan{}, fmt.Errorf("wacky: source plans are too short")
	}

	p := Plan{Name: "wacky", Sport: "hybrid"}
	p.Weeks = append(p.Weeks, tri.Weeks[:2]...)
	for i, long := range wackyLongRuns {
		p.Weeks = append(p.Weeks, Hybrid(marathon.Weeks[i], tri.Weeks[i+2], Of(workout.New(long, ""))))
	}
	p.Weeks = append(p.Weeks, tri.Weeks[tri.Len()-1])

	n := marathon.Len()
	p.Weeks = append(p.Weeks, marathon.Weeks[n-8:n-1]...)

	final := marathon.Weeks[n-1]
	p.Weeks = append(p.Weeks, Week{Rest(), final[0], final[1], Rest(), final[4], Rest(), RaceDay()})

	return p.Clone(), nil
}
