package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/trainplan/internal/workout"
)

func TestBuiltinNames(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"century", "half", "half-n2",
		"marathon-i1", "marathon-i2", "marathon-n1", "marathon-n2",
		"olympic", "olympic2", "rawwacky", "ultra-a", "ultra-hal", "wacky",
	}, c.Names())
}

func TestBuiltinRacePlacement(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	for _, name := range []string{"marathon-i1", "marathon-n2", "half", "ultra-hal"} {
		t.Run(name, func(t *testing.T) {
			p, err := c.Get(name)
			require.NoError(t, err)
			last := p.Weeks[p.Len()-1]
			assert.True(t, last[5].HasRace(), "race on Saturday")
			assert.True(t, last[6].IsRest(), "Sunday off")
		})
	}
}

func TestBuiltinMarathon(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	p, err := c.Get("marathon")
	require.NoError(t, err)
	assert.Equal(t, "marathon-i1", p.Name)
	assert.Equal(t, 18, p.Len())
	assert.NotEmpty(t, p.Source)
	assert.Equal(t, []string{
		"Run 3 miles", "Run 5 miles", "Run 3 miles", " - ", "Run 5 miles pace", "Run 8", " - ",
	}, summaries(p.Weeks[0]))

	full, err := c.Get("full")
	require.NoError(t, err)
	assert.Equal(t, p.Name, full.Name)
}

func TestBuiltinRawWacky(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	p, err := c.Get("rawwacky")
	require.NoError(t, err)
	require.Equal(t, 20, p.Len())
	assert.Equal(t, "hybrid", p.Sport)

	assert.Equal(t, []string{
		" - ",
		"Run 3 miles + Run 30 min",
		"Run 5 miles + Swim 750 m + Bike 35 min",
		"Run 3 miles + Run 25 min",
		"Run 5 miles pace + Swim 1000 m + Bike 50 min",
		"Bike 75 min",
		"Run 8 + Run 40 min",
	}, summaries(p.Weeks[2]))

	assert.True(t, p.Weeks[p.Len()-1][6].HasRace(), "marathon race moves to Sunday")
	assert.True(t, p.Weeks[11][6].HasRace(), "triathlon race stays")
}

func TestBuiltinWacky(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	p, err := c.Get("wacky")
	require.NoError(t, err)
	require.Equal(t, 20, p.Len())

	assert.Equal(t, []string{
		" - ",
		"Run 3 miles",
		"Swim 750 m + Bike 35 min",
		"Run 3 miles",
		"Swim 1000 m + Bike 50 min",
		"Bike 75 min",
		"Run 7 miles",
	}, summaries(p.Weeks[2]))

	assert.Equal(t, []string{
		" - ", "Run 3 miles", "Run 4 miles", " - ", "Run 2 miles", " - ", workout.RaceLabel,
	}, summaries(p.Weeks[19]))
	assert.True(t, p.Weeks[11][6].HasRace(), "triathlon race week")
}

func TestCatalogAdd(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	mine := Plan{Name: "mine", Weeks: []Week{week("Run 3 miles")}}
	require.NoError(t, c.Add(mine))
	assert.Contains(t, c.Names(), "mine")
	assert.False(t, c.IsBuiltin("mine"))

	got, err := c.Get("mine")
	require.NoError(t, err)
	assert.Equal(t, "Run 3 miles", got.Weeks[0][0].String())

	assert.Error(t, c.Add(Plan{Name: "marathon-i1", Weeks: []Week{RestWeek()}}))
	assert.Error(t, c.Add(Plan{Name: "full", Weeks: []Week{RestWeek()}}))
	assert.ErrorIs(t, c.Add(Plan{Name: "empty"}), ErrEmptyPlan)
}

func TestCatalogGetUnknown(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	_, err = c.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marathon-i1")
}
