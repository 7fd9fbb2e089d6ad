package workout

import (
	"strings"
	"unicode/utf8"
)

const (
	// RestLabel is how a rest day is printed in tables.
	RestLabel = " - "
	// RaceLabel marks the race itself.
	RaceLabel = "RACE DAY"
	// MinWidth is the narrowest column a workout occupies in a table.
	MinWidth = 3
)

// Item is a single workout: a short summary used in tables and calendar
// titles, plus a longer free-text description.
type Item struct {
	Summary     string `json:"summary" yaml:"summary" toml:"summary"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// New creates an Item. An empty description is replaced by the summary.
func New(summary, description string) Item {
	if description == "" {
		description = summary
	}
	return Item{Summary: summary, Description: description}
}

// Race returns the item placed on race day.
func Race() Item {
	return New(RaceLabel, "")
}

func (i Item) String() string {
	return i.Summary
}

// Width returns the printed width of the summary, never less than min.
func (i Item) Width(min int) int {
	w := utf8.RuneCountInString(strings.TrimSpace(i.Summary))
	if w < min {
		return min
	}
	return w
}

// Equal compares trimmed summaries and trimmed descriptions.
func (i Item) Equal(other Item) bool {
	return strings.TrimSpace(i.Summary) == strings.TrimSpace(other.Summary) &&
		strings.TrimSpace(i.descriptionOrSummary()) == strings.TrimSpace(other.descriptionOrSummary())
}

// IsRest reports whether the item is a placeholder for a day off.
func (i Item) IsRest() bool {
	s := strings.TrimSpace(i.Summary)
	return s == "" || s == "-" || strings.EqualFold(s, "rest")
}

// IsRace reports whether the item is the race itself.
func (i Item) IsRace() bool {
	return strings.EqualFold(strings.TrimSpace(i.Summary), RaceLabel)
}

func (i Item) descriptionOrSummary() string {
	if i.Description == "" {
		return i.Summary
	}
	return i.Description
}
