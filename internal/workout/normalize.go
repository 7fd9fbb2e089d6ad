package workout

import (
	"regexp"
	"strings"
)

var (
	milesRun   = regexp.MustCompile(`\bmi run\b`)
	milesPace  = regexp.MustCompile(`\bmi? pace\b`)
	kilometers = regexp.MustCompile(`-K Race\b`)
)

// NormalizeRun converts a cell from a Hal Higdon style running table into an
// Item. Rest cells return ok=false. Bare distances and paced runs get a
// "Run " prefix so the estimator can pick the running rate.
func NormalizeRun(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "rest") {
		return Item{}, false
	}

	text = milesRun.ReplaceAllString(text, "miles")
	text = milesPace.ReplaceAllString(text, "miles pace")
	text = kilometers.ReplaceAllString(text, " km race")
	text = strings.ReplaceAll(text, "Half Marathon", "Half marathon")

	lower := strings.ToLower(text)
	if !strings.Contains(lower, "marathon") &&
		!strings.Contains(lower, "race") &&
		!strings.Contains(lower, "bike") &&
		!strings.Contains(lower, "cross") &&
		!strings.HasPrefix(lower, "run ") {
		text = "Run " + text
	}

	return New(text, ""), true
}
