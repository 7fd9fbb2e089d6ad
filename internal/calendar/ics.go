package calendar

import (
	"fmt"
	"io"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//Flyrell//trainplan//EN"

// Encode writes events as an iCalendar document named name. stamp is used
// for every DTSTAMP so repeated exports of the same plan only differ when
// the plan does.
func Encode(w io.Writer, name string, events []Event, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		ev.SetStartAt(e.Start)
		if e.HasEnd() {
			ev.SetEndAt(e.End)
		}
		if e.Alarm > 0 {
			alarm := ev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(trigger(e.Alarm))
			alarm.SetProperty(ics.ComponentPropertyDescription, "REMINDER")
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// WriteFile encodes events into path, replacing any existing file.
func WriteFile(path, name string, events []Event, stamp time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, name, events, stamp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// trigger renders a negative duration offset, e.g. 15m -> "-PT15M".
func trigger(before time.Duration) string {
	minutes := int(before.Round(time.Minute) / time.Minute)
	if minutes%60 == 0 {
		return fmt.Sprintf("-PT%dH", minutes/60)
	}
	return fmt.Sprintf("-PT%dM", minutes)
}
