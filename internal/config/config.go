// Package config loads user settings from ~/.trainplan/config.yaml with
// TRAINPLAN_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/Flyrell/trainplan/internal/schedule"
	"github.com/Flyrell/trainplan/internal/workout"
)

// Setting keys.
const (
	KeyWeekdayStart = "weekday_start"
	KeyWeekendStart = "weekend_start"
	KeyAlarmMinutes = "alarm_minutes"
	KeyTimezone     = "timezone"
	KeyCalendarFile = "calendar_file"
	KeyRateRun      = "rates.run"
	KeyRateSwim     = "rates.swim"
	KeyRateBike     = "rates.bike"
)

// Keys lists every setting in display order.
var Keys = []string{
	KeyWeekdayStart,
	KeyWeekendStart,
	KeyAlarmMinutes,
	KeyTimezone,
	KeyCalendarFile,
	KeyRateRun,
	KeyRateSwim,
	KeyRateBike,
}

// Settings is the user configuration.
type Settings struct {
	WeekdayStart string        `mapstructure:"weekday_start" yaml:"weekday_start"`
	WeekendStart string        `mapstructure:"weekend_start" yaml:"weekend_start"`
	AlarmMinutes int           `mapstructure:"alarm_minutes" yaml:"alarm_minutes"`
	Timezone     string        `mapstructure:"timezone" yaml:"timezone"`
	CalendarFile string        `mapstructure:"calendar_file" yaml:"calendar_file"`
	Rates        workout.Rates `mapstructure:"rates" yaml:"rates"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		WeekdayStart: "7:30am",
		WeekendStart: "8:00am",
		AlarmMinutes: 15,
		Timezone:     "Local",
		CalendarFile: "training.ics",
		Rates:        workout.DefaultRates(),
	}
}

// Dir returns the trainplan directory under homeDir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".trainplan")
}

// Path returns the default config file path.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// envBindings maps each key to the environment variables that can set it.
var envBindings = map[string][]string{
	KeyWeekdayStart: {"TRAINPLAN_WEEKDAY_START"},
	KeyWeekendStart: {"TRAINPLAN_WEEKEND_START"},
	KeyAlarmMinutes: {"TRAINPLAN_ALARM_MINUTES"},
	KeyTimezone:     {"TRAINPLAN_TIMEZONE"},
	KeyCalendarFile: {"TRAINPLAN_CALENDAR_FILE"},
	KeyRateRun:      {"TRAINPLAN_RATES_RUN"},
	KeyRateSwim:     {"TRAINPLAN_RATES_SWIM"},
	KeyRateBike:     {"TRAINPLAN_RATES_BIKE"},
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := Defaults()
	v.SetDefault(KeyWeekdayStart, def.WeekdayStart)
	v.SetDefault(KeyWeekendStart, def.WeekendStart)
	v.SetDefault(KeyAlarmMinutes, def.AlarmMinutes)
	v.SetDefault(KeyTimezone, def.Timezone)
	v.SetDefault(KeyCalendarFile, def.CalendarFile)
	v.SetDefault(KeyRateRun, def.Rates.Run)
	v.SetDefault(KeyRateSwim, def.Rates.Swim)
	v.SetDefault(KeyRateBike, def.Rates.Bike)

	for key, envs := range envBindings {
		if err := v.BindEnv(slices.Insert(slices.Clone(envs), 0, key)...); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return v, nil
}

// Load reads the settings from path, falling back to defaults for anything
// the file does not set. Environment variables override both.
func Load(path string) (Settings, error) {
	v, err := newViper(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Set validates value for key and stores it in the file at path.
func Set(path, key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown setting '%s' (available: %v)", key, Keys)
	}

	typed, err := parseValue(key, value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.Set(key, typed)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}

// Reset removes the config file. A missing file is not an error.
func Reset(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func parseValue(key, value string) (any, error) {
	switch key {
	case KeyAlarmMinutes:
		return strconv.Atoi(value)
	case KeyRateRun, KeyRateSwim, KeyRateBike:
		return strconv.ParseFloat(value, 64)
	}
	return value, nil
}

// Validate checks that every setting can be used.
func (s Settings) Validate() error {
	if _, err := schedule.ParseTimeOfDay(s.WeekdayStart); err != nil {
		return fmt.Errorf("%s: %w", KeyWeekdayStart, err)
	}
	if _, err := schedule.ParseTimeOfDay(s.WeekendStart); err != nil {
		return fmt.Errorf("%s: %w", KeyWeekendStart, err)
	}
	if s.AlarmMinutes < 0 {
		return fmt.Errorf("%s must not be negative", KeyAlarmMinutes)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	if s.CalendarFile == "" {
		return fmt.Errorf("%s must not be empty", KeyCalendarFile)
	}
	if s.Rates.Run <= 0 || s.Rates.Swim <= 0 || s.Rates.Bike <= 0 {
		return fmt.Errorf("rates must be positive minutes per mile")
	}
	return nil
}

// WeekdayTime is the parsed weekday start time.
func (s Settings) WeekdayTime() schedule.TimeOfDay {
	t, _ := schedule.ParseTimeOfDay(s.WeekdayStart)
	return t
}

// WeekendTime is the parsed weekend start time.
func (s Settings) WeekendTime() schedule.TimeOfDay {
	t, _ := schedule.ParseTimeOfDay(s.WeekendStart)
	return t
}

// AlarmBefore is the reminder offset for weekday workouts.
func (s Settings) AlarmBefore() time.Duration {
	return time.Duration(s.AlarmMinutes) * time.Minute
}

// Location resolves the configured time zone.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyTimezone, err)
	}
	return loc, nil
}

// Values returns key/value pairs in display order.
func (s Settings) Values() [][2]string {
	return [][2]string{
		{KeyWeekdayStart, s.WeekdayStart},
		{KeyWeekendStart, s.WeekendStart},
		{KeyAlarmMinutes, strconv.Itoa(s.AlarmMinutes)},
		{KeyTimezone, s.Timezone},
		{KeyCalendarFile, s.CalendarFile},
		{KeyRateRun, strconv.FormatFloat(s.Rates.Run, 'f', -1, 64)},
		{KeyRateSwim, strconv.FormatFloat(s.Rates.Swim, 'f', -1, 64)},
		{KeyRateBike, strconv.FormatFloat(s.Rates.Bike, 'f', -1, 64)},
	}
}
