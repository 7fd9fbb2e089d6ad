package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	// Wednesday, October 20, 2027
	now := time.Date(2027, 10, 20, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "today", input: "today", want: time.Date(2027, 10, 20, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", input: "Tomorrow", want: time.Date(2027, 10, 21, 0, 0, 0, 0, time.UTC)},

		{name: "saturday", input: "saturday", want: time.Date(2027, 10, 23, 0, 0, 0, 0, time.UTC)},
		{name: "next sunday", input: "next sunday", want: time.Date(2027, 10, 24, 0, 0, 0, 0, time.UTC)},
		{name: "short weekday", input: "sat", want: time.Date(2027, 10, 23, 0, 0, 0, 0, time.UTC)},
		{name: "same weekday goes to next week", input: "wednesday", want: time.Date(2027, 10, 27, 0, 0, 0, 0, time.UTC)},
		{name: "on prefix", input: "on Saturday", want: time.Date(2027, 10, 23, 0, 0, 0, 0, time.UTC)},

		{name: "ISO", input: "2028-04-16", want: time.Date(2028, 4, 16, 0, 0, 0, 0, time.UTC)},
		{name: "month day later this year", input: "Nov 7", want: time.Date(2027, 11, 7, 0, 0, 0, 0, time.UTC)},
		{name: "month day already passed", input: "Apr 16", want: time.Date(2028, 4, 16, 0, 0, 0, 0, time.UTC)},
		{name: "month day year", input: "Apr 16 2028", want: time.Date(2028, 4, 16, 0, 0, 0, 0, time.UTC)},
		{name: "long month", input: "november 7", want: time.Date(2027, 11, 7, 0, 0, 0, 0, time.UTC)},
		{name: "day month", input: "7 Nov", want: time.Date(2027, 11, 7, 0, 0, 0, 0, time.UTC)},
		{name: "day long month year", input: "16 April 2028", want: time.Date(2028, 4, 16, 0, 0, 0, 0, time.UTC)},
		{name: "today by date", input: "Oct 20", want: time.Date(2027, 10, 20, 0, 0, 0, 0, time.UTC)},

		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "race day", wantErr: true},
		{name: "bad ISO", input: "2028-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateWithNow(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateKeepsLocation(t *testing.T) {
	cet := time.FixedZone("CET", 60*60)
	now := time.Date(2027, 10, 20, 0, 30, 0, 0, cet)

	got, err := ParseDateWithNow("2027-11-07", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 11, 7, 0, 0, 0, 0, cet), got)

	got, err = ParseDateWithNow("today", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 10, 20, 0, 0, 0, 0, cet), got)
}

func TestParseDateMonthNames(t *testing.T) {
	now := time.Date(2027, 1, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"Apr 18", time.Date(2027, 4, 18, 0, 0, 0, 0, time.UTC)},
		{"Apr 18 2027", time.Date(2027, 4, 18, 0, 0, 0, 0, time.UTC)},
		{"18 April 2027", time.Date(2027, 4, 18, 0, 0, 0, 0, time.UTC)},
		{"SEP 9", time.Date(2027, 9, 9, 0, 0, 0, 0, time.UTC)},
		{"december 3", time.Date(2027, 12, 3, 0, 0, 0, 0, time.UTC)},
		{"Jan 18", time.Date(2027, 1, 18, 0, 0, 0, 0, time.UTC)},
		{"Jan 9", time.Date(2028, 1, 9, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateWithNow(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
