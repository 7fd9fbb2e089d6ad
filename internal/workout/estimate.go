package workout

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnknownActivity is returned when no rate applies to a workout.
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrNoDistance is returned when a distance-based workout has no distance.
	ErrNoDistance = errors.New("no distance")
)

var (
	minutesRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*min`)
	hoursRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)\b`)
	numberRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-z]+)?`)
)

// Rates holds speed assumptions in minutes per mile.
type Rates struct {
	Run  float64 `mapstructure:"run" yaml:"run"`
	Swim float64 `mapstructure:"swim" yaml:"swim"`
	Bike float64 `mapstructure:"bike" yaml:"bike"`
}

// DefaultRates: a 10 minute mile, 1 mph in the water, 15 mph on the bike.
func DefaultRates() Rates {
	return Rates{Run: 10, Swim: 60, Bike: 4}
}

// Estimator converts workout labels into time.
type Estimator struct {
	Rates Rates
}

// NewEstimator returns an Estimator using the given rates. Zero rates fall
// back to the defaults.
func NewEstimator(r Rates) Estimator {
	def := DefaultRates()
	if r.Run <= 0 {
		r.Run = def.Run
	}
	if r.Swim <= 0 {
		r.Swim = def.Swim
	}
	if r.Bike <= 0 {
		r.Bike = def.Bike
	}
	return Estimator{Rates: r}
}

// Estimate returns how long a workout takes. Explicit durations ("Bike 60 min",
// "2 hr run") are used as written. Distances are converted with the activity
// rate and rounded up to the next half hour, with a one hour minimum.
func (e Estimator) Estimate(it Item) (time.Duration, error) {
	if it.IsRest() {
		return 0, nil
	}

	s := strings.ToLower(strings.TrimSpace(it.Summary))

	if m := minutesRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parsing minutes in %q: %w", it.Summary, err)
		}
		return minutes(v), nil
	}

	if m := hoursRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parsing hours in %q: %w", it.Summary, err)
		}
		return minutes(v * 60), nil
	}

	if strings.Contains(s, "cross") {
		return 30 * time.Minute, nil
	}

	speed, err := e.speed(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", err, it.Summary)
	}
	dist, err := Distance(s)
	if err != nil {
		return 0, fmt.Errorf("%w in %q", err, it.Summary)
	}

	return roundHalfHour(dist * speed), nil
}

func (e Estimator) speed(s string) (float64, error) {
	switch {
	case strings.Contains(s, "run"), strings.Contains(s, "marathon"), strings.Contains(s, "km race"):
		return e.Rates.Run, nil
	case strings.Contains(s, "swim"):
		return e.Rates.Swim, nil
	case strings.Contains(s, "bike"):
		return e.Rates.Bike, nil
	}
	return 0, ErrUnknownActivity
}

// Distance extracts a distance in miles from a lower-cased workout label.
func Distance(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "half"):
		return 13.1, nil
	case s == "marathon":
		return 26.2, nil
	case strings.Contains(s, "metric century"):
		return 62, nil
	case strings.Contains(s, "century"):
		return 100, nil
	}

	m := numberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrNoDistance
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, err
	}

	switch m[2] {
	case "km", "k":
		return v / kmPerMile, nil
	case "m", "meter", "meters":
		return v / metersPerMile, nil
	case "yd", "yds", "yard", "yards":
		return v / yardsPerMile, nil
	}
	return v, nil
}

const (
	kmPerMile     = 1.609344
	metersPerMile = 1609.344
	yardsPerMile  = 1760
)

func minutes(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Minute)))
}

// roundHalfHour rounds a raw estimate in minutes up to the next half hour
// with a minimum of one hour.
func roundHalfHour(raw float64) time.Duration {
	hours := int(math.Floor(raw)) / 60
	if hours < 1 {
		hours = 1
	}
	rest := raw - float64(hours*60)
	if rest < 0 {
		rest = 0
	}

	mins := 0
	switch {
	case rest == 0:
	case rest == 30:
		mins = 30
	case rest > 30:
		hours++
	default:
		mins = 30
	}
	return time.Duration(hours)*time.Hour + time.Duration(mins)*time.Minute
}
