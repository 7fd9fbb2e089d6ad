package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Flyrell/trainplan/internal/calendar"
	"github.com/Flyrell/trainplan/internal/schedule"
	"github.com/Flyrell/trainplan/internal/stringutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scheduleOptions holds the flags of the schedule command.
type scheduleOptions struct {
	plan         planOptions
	date         string
	start        string
	weekendStart string
	calendarFile string
	noCalendar   bool
	noAlarms     bool
	export       string
	output       string
	totals       bool
	yes          bool
}

var scheduleCmd = LeafCommand{
	Use:   "schedule",
	Short: "Print a dated training schedule and write it to a calendar file",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "shift", Usage: "shift the merged plan one day later and swap its Friday and Saturday"},
		{Name: "no-calendar", Usage: "do not write a calendar file"},
		{Name: "no-alarms", Usage: "leave reminders off the calendar events"},
		{Name: "totals", Usage: "add a column with the estimated weekly training time"},
		{Name: "yes", Usage: "overwrite existing files without asking"},
	},
	StrFlags: []StringFlag{
		{Name: "type", Usage: "training plan (see 'trainplan plans list')", Default: "marathon"},
		{Name: "date", Usage: "race date, e.g. 2028-04-16 or 'next sunday'"},
		{Name: "start", Usage: "weekday workout start time (default from config)"},
		{Name: "weekend-start", Usage: "weekend workout start time (default from config)"},
		{Name: "merge", Usage: "overlay a second plan onto the first"},
		{Name: "calendar", Usage: "calendar file to write (default from config)"},
		{Name: "export", Usage: "also export the schedule as pdf or html"},
		{Name: "output", Usage: "export file path (default <plan>-<race date>.<format>)"},
	},
	IntFlags: []IntFlag{
		{Name: "offset", Usage: "week of the first plan at which the merged plan starts", Default: 2},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		opts := scheduleFlags(cmd)
		kit := NewPromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
		return runSchedule(cmd, env, opts, kit, isTerminal(cmd.InOrStdin()), time.Now)
	},
}.Build()

func scheduleFlags(cmd *cobra.Command) scheduleOptions {
	var opts scheduleOptions
	opts.plan.name, _ = cmd.Flags().GetString("type")
	opts.plan.merge, _ = cmd.Flags().GetString("merge")
	opts.plan.offset, _ = cmd.Flags().GetInt("offset")
	opts.plan.shift, _ = cmd.Flags().GetBool("shift")
	opts.date, _ = cmd.Flags().GetString("date")
	opts.start, _ = cmd.Flags().GetString("start")
	opts.weekendStart, _ = cmd.Flags().GetString("weekend-start")
	opts.calendarFile, _ = cmd.Flags().GetString("calendar")
	opts.noCalendar, _ = cmd.Flags().GetBool("no-calendar")
	opts.noAlarms, _ = cmd.Flags().GetBool("no-alarms")
	opts.export, _ = cmd.Flags().GetString("export")
	opts.output, _ = cmd.Flags().GetString("output")
	opts.totals, _ = cmd.Flags().GetBool("totals")
	opts.yes, _ = cmd.Flags().GetBool("yes")
	return opts
}

func runSchedule(cmd *cobra.Command, env runEnv, opts scheduleOptions, kit PromptKit, interactive bool, nowFn func() time.Time) error {
	out := cmd.OutOrStdout()
	now := nowFn().In(env.location)
	log := env.log

	switch opts.export {
	case "", "pdf", "html":
	default:
		return fmt.Errorf("unsupported export format '%s' (valid: pdf, html)", opts.export)
	}

	p, err := resolvePlan(env.catalog, opts.plan)
	if err != nil {
		return err
	}
	race, err := resolveRaceDate(opts.date, interactive, kit.Prompt, now)
	if err != nil {
		return err
	}
	log.Debug("scheduling plan",
		zap.String("plan", p.Name),
		zap.Int("weeks", p.Len()),
		zap.String("race", race.Format("2006-01-02")))

	dp, err := anchor(p, race, now, log)
	if err != nil {
		return err
	}

	for _, line := range dp.countdown.Summary() {
		_, _ = fmt.Fprintln(out, line)
	}

	est := env.estimator()
	if opts.totals {
		err = printTable(out, dp.weeks, &est)
	} else {
		err = printTable(out, dp.weeks, nil)
	}
	if err != nil {
		return err
	}

	confirm := ResolveConfirmFunc(opts.yes, kit)

	if !opts.noCalendar {
		weekday, weekend, err := startTimes(env, opts)
		if err != nil {
			return err
		}
		builder := calendar.Builder{
			Plan:         dp.plan.Name,
			Estimator:    est,
			WeekdayStart: &weekday,
			WeekendStart: &weekend,
			AlarmBefore:  env.settings.AlarmBefore(),
			NoAlarms:     opts.noAlarms || env.settings.AlarmMinutes == 0,
			Location:     env.location,
			Logger:       log,
		}

		path := opts.calendarFile
		if path == "" {
			path = env.settings.CalendarFile
		}
		ok, err := confirmOverwrite(path, confirm)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted")
		}

		events := builder.Build(dp.weeks)
		if err := calendar.WriteFile(path, dp.plan.Name, events, nowFn()); err != nil {
			return err
		}
		log.Debug("calendar written", zap.String("path", path), zap.Int("events", len(events)))
		_, _ = fmt.Fprintf(out, "Wrote training calendar to \"%s\"\n", path)
	}

	if opts.export != "" {
		path := opts.output
		if path == "" {
			path = exportFileName(dp.plan.Name, race, opts.export)
		}
		ok, err := confirmOverwrite(path, confirm)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted")
		}
		if err := exportSchedule(opts.export, path, dp, est); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Exported %s to \"%s\"\n", strings.ToUpper(opts.export), path)
	}
	return nil
}

// startTimes resolves workout start times from flags, then config.
func startTimes(env runEnv, opts scheduleOptions) (schedule.TimeOfDay, schedule.TimeOfDay, error) {
	weekday := env.settings.WeekdayTime()
	weekend := env.settings.WeekendTime()
	if opts.start != "" {
		t, err := schedule.ParseTimeOfDay(opts.start)
		if err != nil {
			return weekday, weekend, fmt.Errorf("--start: %w", err)
		}
		weekday = t
	}
	if opts.weekendStart != "" {
		t, err := schedule.ParseTimeOfDay(opts.weekendStart)
		if err != nil {
			return weekday, weekend, fmt.Errorf("--weekend-start: %w", err)
		}
		weekend = t
	}
	return weekday, weekend, nil
}

// confirmOverwrite asks before replacing an existing file.
func confirmOverwrite(path string, confirm ConfirmFunc) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return confirm(fmt.Sprintf("\"%s\" already exists. Overwrite?", path))
}

func exportFileName(planName string, race time.Time, format string) string {
	return fmt.Sprintf("%s-%s.%s", stringutil.Slugify(planName), race.Format("2006-01-02"), format)
}
