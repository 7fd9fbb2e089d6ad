package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/trainplan/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func miniDatedPlan(t *testing.T) datedPlan {
	t.Helper()
	env := newTestEnv(t)
	p, err := env.catalog.Get("mini")
	require.NoError(t, err)
	dp, err := anchor(p, time.Date(2028, 4, 16, 0, 0, 0, 0, time.UTC), fixedNow(), zap.NewNop())
	require.NoError(t, err)
	return dp
}

func newMiniBrowseModel(t *testing.T, today time.Time) browseModel {
	return newBrowseModel(miniDatedPlan(t), workout.NewEstimator(workout.DefaultRates()), today)
}

func press(m browseModel, keys ...string) browseModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(browseModel)
	}
	return m
}

func TestBrowseModelStartsOnToday(t *testing.T) {
	m := newMiniBrowseModel(t, time.Date(2028, 4, 13, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, m.cursorRow)
	assert.Equal(t, 3, m.cursorCol)
}

func TestBrowseModelStartsAtTopBeforeTraining(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())

	assert.Equal(t, 0, m.cursorRow)
	assert.Equal(t, 0, m.cursorCol)
}

func TestBrowseModelNavigation(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())

	m = press(m, "right", "right", "l")
	assert.Equal(t, 3, m.cursorCol)

	m = press(m, "down", "j")
	assert.Equal(t, 1, m.cursorRow, "cursor stops at the last week")

	m = press(m, "up", "h")
	assert.Equal(t, 0, m.cursorRow)
	assert.Equal(t, 2, m.cursorCol)

	m = press(m, "left", "left", "left")
	assert.Equal(t, 0, m.cursorCol, "cursor stops at Monday")

	m = press(m, "G")
	assert.Equal(t, 1, m.cursorRow)
	m = press(m, "g")
	assert.Equal(t, 0, m.cursorRow)
}

func TestBrowseModelJumpToToday(t *testing.T) {
	m := newMiniBrowseModel(t, time.Date(2028, 4, 15, 0, 0, 0, 0, time.UTC))
	m.cursorRow, m.cursorCol = 0, 0

	m = press(m, "t")

	assert.Equal(t, 1, m.cursorRow)
	assert.Equal(t, 5, m.cursorCol)
}

func TestBrowseModelQuit(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestBrowseModelWindowResizeScrolls(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())
	m = press(m, "down")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: browseReservedLines + 1})
	m = updated.(browseModel)

	assert.Equal(t, 1, m.visibleRows())
	assert.Equal(t, 1, m.scrollY)
}

func TestBrowseModelView(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())
	m = press(m, "right", "right", "right")

	view := m.View()

	assert.Contains(t, view, "mini, race day Sun Apr 16 2028")
	assert.Contains(t, view, "2028-04-03 Week  2:")
	assert.Contains(t, view, "RACE DAY")
	assert.Contains(t, view, "Thursday, April 6 2028, week 2")
	assert.Contains(t, view, "Estimated time 1h 0m")
	assert.Contains(t, view, "weeks 1-2 of 2")
	assert.Contains(t, view, "q quit")
}

func TestBrowseModelViewDetails(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		col   int
		wants []string
	}{
		{"rest day", 0, 0, []string{"Monday, April 3 2028", "Rest day"}},
		{"race day", 1, 6, []string{"Sunday, April 16 2028, week 1", "RACE DAY"}},
		{"description", 1, 3, []string{"Run 2 miles", "Easy pace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMiniBrowseModel(t, fixedNow())
			m.cursorRow, m.cursorCol = tt.row, tt.col
			detail := m.detail()
			for _, w := range tt.wants {
				assert.Contains(t, detail, w)
			}
		})
	}
}

func TestBrowseModelViewUnknownWorkout(t *testing.T) {
	m := newMiniBrowseModel(t, fixedNow())
	m.weeks[0].Week[0] = day("Juggle")

	assert.Contains(t, m.detail(), "Estimated time unknown")
}

func execBrowse(env runEnv, opts planOptions, date string, kit PromptKit, interactive bool) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := browseCmd
	cmd.SetOut(stdout)
	err := runBrowse(cmd, env, opts, date, kit, interactive, fixedNow)
	return stdout.String(), err
}

func TestBrowseNonTTYPrintsStaticTable(t *testing.T) {
	env := newTestEnv(t)

	stdout, err := execBrowse(env, planOptions{name: "mini"}, "2028-04-16", noPrompts(t), false)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	assert.Equal(t, "25.4 weeks until the race", lines[0])
	assert.True(t, strings.HasSuffix(lines[2], " Total"))
	assert.True(t, strings.HasSuffix(lines[4], " 2h 0m"))
}

func TestBrowseDefaultsToMarathonWithoutTerminal(t *testing.T) {
	env := newTestEnv(t)

	stdout, err := execBrowse(env, planOptions{}, "2028-04-16", noPrompts(t), false)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Week 18:")
}

func TestBrowseSelectsPlanInteractively(t *testing.T) {
	env := newTestEnv(t)
	idx := slices.Index(env.catalog.Names(), "mini")
	require.GreaterOrEqual(t, idx, 0)

	kit := PromptKit{Select: mockSelect(idx), Prompt: mockPrompt("2028-04-16")}
	stdout, err := execBrowse(env, planOptions{}, "", kit, true)
	require.NoError(t, err)

	assert.Contains(t, stdout, "2028-04-10 Week  1:")
	assert.NotContains(t, stdout, "Week  3:")
}
