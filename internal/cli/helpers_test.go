package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/trainplan/internal/config"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedNow is Wednesday, October 20 2027, 10:30 UTC.
func fixedNow() time.Time {
	return time.Date(2027, 10, 20, 10, 30, 0, 0, time.UTC)
}

const miniPlan = `name: mini
sport: run
weeks:
  - tue: Run 3 miles
    thu: Run 3 miles
    sat: Run 6 miles
  - tue: Run 2 miles
    thu:
      summary: Run 2 miles
      description: Easy pace
    sun: race
`

func day(summary string) plan.Day {
	return plan.Of(workout.New(summary, ""))
}

// sp returns n spaces.
func sp(n int) string {
	return strings.Repeat(" ", n)
}

// newTestEnv returns an environment rooted in a temp home directory with
// UTC settings and the built-in catalog plus the "mini" plan.
func newTestEnv(t *testing.T) runEnv {
	t.Helper()
	catalog, err := plan.Builtin()
	require.NoError(t, err)
	mini, err := plan.DecodeBytes([]byte(miniPlan), plan.FormatYAML)
	require.NoError(t, err)
	require.NoError(t, catalog.Add(mini))

	settings := config.Defaults()
	settings.Timezone = "UTC"
	homeDir := t.TempDir()

	return runEnv{
		homeDir:    homeDir,
		configPath: config.Path(homeDir),
		settings:   settings,
		location:   time.UTC,
		catalog:    catalog,
		log:        zap.NewNop(),
	}
}

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// writePlanFile writes a plan document into a temp dir.
func writePlanFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// noPrompts is a PromptKit that fails the test when anything is asked.
func noPrompts(t *testing.T) PromptKit {
	return PromptKit{
		Prompt: func(p string) (string, error) {
			t.Fatalf("unexpected prompt: %s", p)
			return "", nil
		},
		Confirm: func(p string) (bool, error) {
			t.Fatalf("unexpected confirm: %s", p)
			return false, nil
		},
		Select: func(title string, _ []string) (int, error) {
			t.Fatalf("unexpected select: %s", title)
			return 0, nil
		},
		MultiSelect: func(title string, _ []string) ([]int, error) {
			t.Fatalf("unexpected multi-select: %s", title)
			return nil, nil
		},
	}
}
