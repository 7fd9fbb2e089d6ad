// Package calendar turns a dated training plan into calendar events and
// writes them as iCalendar.
package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Flyrell/trainplan/internal/logging"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/schedule"
	"github.com/Flyrell/trainplan/internal/workout"
)

// Defaults used when a Builder field is left zero.
var (
	DefaultWeekdayStart = schedule.TimeOfDay{Hour: 7, Minute: 30}
	DefaultWeekendStart = schedule.TimeOfDay{Hour: 8, Minute: 0}
)

// DefaultAlarmBefore is how long before a weekday workout the reminder fires.
const DefaultAlarmBefore = 15 * time.Minute

// uidSpace namespaces event UIDs so the same workout keeps its UID across
// exports.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Flyrell/trainplan"))

// Event is one training session on the calendar.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time     // zero when the duration could not be estimated
	Alarm       time.Duration // reminder offset before Start, zero for none
}

// HasEnd reports whether the event has a known end.
func (e Event) HasEnd() bool {
	return !e.End.IsZero()
}

// Builder converts dated weeks into events.
type Builder struct {
	Plan         string
	Estimator    workout.Estimator
	WeekdayStart *schedule.TimeOfDay
	WeekendStart *schedule.TimeOfDay
	AlarmBefore  time.Duration
	NoAlarms     bool
	Location     *time.Location
	Logger       *zap.Logger
}

// Build yields one event per training day. Rest days and days holding only
// the race are left off the calendar. Monday events carry the week number in
// their summary.
func (b Builder) Build(weeks []schedule.DatedWeek) []Event {
	log := logging.Nop(b.Logger)

	var events []Event
	for _, w := range weeks {
		for slot, day := range w.Week {
			summary := day.Summary()
			if summary == "" {
				continue
			}
			if slot == 0 {
				summary = fmt.Sprintf("Week %d - %s", w.Number, summary)
			}

			start := b.startTime(slot).On(b.day(w.Date(slot)))
			ev := Event{
				UID:         eventUID(b.Plan, start, summary),
				Summary:     summary,
				Description: day.Description(),
				Start:       start,
			}

			dur, err := day.Duration(b.Estimator)
			if err != nil {
				log.Warn("cannot estimate workout duration, leaving event open-ended",
					zap.String("date", start.Format("2006-01-02")),
					zap.String("summary", day.Summary()),
					zap.Error(err))
			} else {
				ev.End = start.Add(dur)
				if slot < 5 && !b.NoAlarms {
					ev.Alarm = b.alarmBefore()
				}
			}

			log.Debug("calendar event",
				zap.String("summary", ev.Summary),
				zap.Time("start", ev.Start),
				zap.Duration("duration", dur))
			events = append(events, ev)
		}
	}
	return events
}

func (b Builder) startTime(slot int) schedule.TimeOfDay {
	if slot >= 5 {
		if b.WeekendStart != nil {
			return *b.WeekendStart
		}
		return DefaultWeekendStart
	}
	if b.WeekdayStart != nil {
		return *b.WeekdayStart
	}
	return DefaultWeekdayStart
}

func (b Builder) alarmBefore() time.Duration {
	if b.AlarmBefore > 0 {
		return b.AlarmBefore
	}
	return DefaultAlarmBefore
}

// day moves a calendar date into the builder's location, keeping the date.
func (b Builder) day(d time.Time) time.Time {
	if b.Location == nil {
		return d
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, b.Location)
}

func eventUID(planName string, start time.Time, summary string) string {
	key := fmt.Sprintf("%s|%s|%s", planName, start.Format("2006-01-02"), summary)
	return uuid.NewSHA1(uidSpace, []byte(key)).String() + "@trainplan"
}

// DaySlot is a single dated day with its estimated duration.
type DaySlot struct {
	Date     time.Time
	Day      plan.Day
	Duration time.Duration
	Err      error
}

// Days lists the days of a week with their estimated durations.
func Days(w schedule.DatedWeek, est workout.Estimator) []DaySlot {
	out := make([]DaySlot, 0, plan.DaysPerWeek)
	for slot, day := range w.Week {
		ds := DaySlot{Date: w.Date(slot), Day: day}
		ds.Duration, ds.Err = day.Duration(est)
		out = append(out, ds)
	}
	return out
}
