package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRunning(t *testing.T) {
	tests := []struct {
		input string
		want  int // minutes
	}{
		{"3 mi run", 60}, // minimum time is 1h
		{"5 mi run", 60},
		{"5 mi pace", 60},
		{"5 m pace", 60},
		{"10 miles", 120}, // raw is 100
		{"4 mi run", 60},
		{"9 mi run", 90},
		{"Half Marathon", 150}, // raw is 131
		{"Marathon", 270},      // raw is 262
		{"2 mi run", 60},
		{"10-K Race", 90}, // raw is 62
		{"5-K Race", 60},
		{"8", 90},
		{"1.5 hr run", 90},
		{"13.1 mi", 150},
	}

	est := NewEstimator(DefaultRates())
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			it, ok := NormalizeRun(tt.input)
			require.True(t, ok)

			got, err := est.Estimate(it)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tt.want)*time.Minute, got)
		})
	}
}

func TestEstimateGeneric(t *testing.T) {
	tests := []struct {
		input     string
		wantMins  int
		wantWidth int
	}{
		{"Cross", 30, 5},
		{"Rest", 0, 4},
		{"-", 0, 3},
		{"60 min cross", 60, 12},
		{"1 hour cross", 60, 12},
	}

	est := NewEstimator(DefaultRates())
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			it := New(tt.input, "")
			got, err := est.Estimate(it)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tt.wantMins)*time.Minute, got)
			assert.Equal(t, tt.wantWidth, it.Width(MinWidth))
		})
	}
}

func TestEstimateBike(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Bike 60 min", 60},
		{"Bike 24 miles", 120},
		{"Bike 54 miles", 240},
		{"Bike metric century", 270},
		{"Bike century", 420}, // raw is 400
	}

	est := NewEstimator(DefaultRates())
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := est.Estimate(New(tt.input, ""))
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tt.want)*time.Minute, got)
		})
	}
}

func TestEstimateSwimUnits(t *testing.T) {
	est := NewEstimator(DefaultRates())

	got, err := est.Estimate(New("Swim 500 m", ""))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got)

	got, err = est.Estimate(New("Swim 2 miles", ""))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, got)

	got, err = est.Estimate(New("Swim 1760 yd", ""))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got)
}

func TestEstimateCustomRates(t *testing.T) {
	est := NewEstimator(Rates{Run: 8})
	assert.Equal(t, 60.0, est.Rates.Swim)
	assert.Equal(t, 4.0, est.Rates.Bike)

	got, err := est.Estimate(New("Run 15 miles", ""))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, got) // raw is 120
}

func TestEstimateErrors(t *testing.T) {
	est := NewEstimator(DefaultRates())

	_, err := est.Estimate(New("Yoga", ""))
	assert.ErrorIs(t, err, ErrUnknownActivity)

	_, err = est.Estimate(New(RaceLabel, ""))
	assert.ErrorIs(t, err, ErrUnknownActivity)

	_, err = est.Estimate(New("Rest or easy run", ""))
	assert.ErrorIs(t, err, ErrNoDistance)
}

func TestRoundHalfHour(t *testing.T) {
	tests := []struct {
		raw  float64
		want time.Duration
	}{
		{0, time.Hour},
		{45, time.Hour},
		{60, time.Hour},
		{61, 90 * time.Minute},
		{90, 90 * time.Minute},
		{91, 2 * time.Hour},
		{131, 150 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfHour(tt.raw), "raw %v", tt.raw)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"half marathon", 13.1, false},
		{"marathon", 26.2, false},
		{"bike metric century", 62, false},
		{"bike century", 100, false},
		{"run 7.5 miles", 7.5, false},
		{"10 km race", 10 / kmPerMile, false},
		{"swim 1609.344 m", 1, false},
		{"easy jog", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Distance(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0m"},
		{30 * time.Minute, "30m"},
		{time.Hour, "1h 0m"},
		{90 * time.Minute, "1h 30m"},
		{-5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.input))
		})
	}
}
