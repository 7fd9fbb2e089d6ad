package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/schedule"
	"github.com/Flyrell/trainplan/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	restStyle     = lipgloss.NewStyle().Faint(true)
	raceStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00"))
	todayStyle    = lipgloss.NewStyle().Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// browseReservedLines covers the title, header, detail pane and footer.
const browseReservedLines = 10

type browseModel struct {
	title      string
	weeks      []schedule.DatedWeek
	widths     [plan.DaysPerWeek]int
	est        workout.Estimator
	today      time.Time
	scrollY    int // first visible week
	cursorRow  int // selected week
	cursorCol  int // selected weekday, Monday being 0
	termWidth  int
	termHeight int
}

func newBrowseModel(dp datedPlan, est workout.Estimator, today time.Time) browseModel {
	rows := make([]plan.Week, len(dp.weeks))
	for i, w := range dp.weeks {
		rows[i] = w.Week
	}
	m := browseModel{
		title:      fmt.Sprintf("%s, race day %s", dp.plan.Name, dp.race.Format("Mon Jan 2 2006")),
		weeks:      dp.weeks,
		widths:     plan.ColumnWidths(rows),
		est:        est,
		today:      today,
		termWidth:  120,
		termHeight: 40,
	}
	if row, col, ok := m.todaySlot(); ok {
		m.cursorRow, m.cursorCol = row, col
	}
	return m.ensureCursorVisible()
}

// todaySlot locates today in the schedule.
func (m browseModel) todaySlot() (int, int, bool) {
	for i, w := range m.weeks {
		for slot := range w.Week {
			if sameDay(w.Date(slot), m.today) {
				return i, slot, true
			}
		}
	}
	return 0, 0, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (m browseModel) visibleRows() int {
	available := m.termHeight - browseReservedLines
	if available < 1 {
		return 1
	}
	if available > len(m.weeks) {
		return len(m.weeks)
	}
	return available
}

func (m browseModel) maxScrollY() int {
	max := len(m.weeks) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// ensureCursorVisible adjusts scroll so the cursor is within the viewport.
func (m browseModel) ensureCursorVisible() browseModel {
	if m.cursorRow < m.scrollY {
		m.scrollY = m.cursorRow
	}
	if m.cursorRow >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursorRow - m.visibleRows() + 1
	}
	return m.clampScroll()
}

func (m browseModel) clampScroll() browseModel {
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

var browseCmd = LeafCommand{
	Use:   "browse",
	Short: "Browse a dated training schedule in the terminal",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "shift", Usage: "shift the merged plan one day later and swap its Friday and Saturday"},
	},
	StrFlags: []StringFlag{
		{Name: "type", Usage: "training plan (asks when omitted on a terminal)"},
		{Name: "date", Usage: "race date, e.g. 2028-04-16 or 'next sunday'"},
		{Name: "merge", Usage: "overlay a second plan onto the first"},
	},
	IntFlags: []IntFlag{
		{Name: "offset", Usage: "week of the first plan at which the merged plan starts", Default: 2},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		var opts planOptions
		opts.name, _ = cmd.Flags().GetString("type")
		opts.merge, _ = cmd.Flags().GetString("merge")
		opts.offset, _ = cmd.Flags().GetInt("offset")
		opts.shift, _ = cmd.Flags().GetBool("shift")
		date, _ := cmd.Flags().GetString("date")

		kit := NewPromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
		return runBrowse(cmd, env, opts, date, kit, isTerminal(cmd.InOrStdin()), time.Now)
	},
}.Build()

func runBrowse(cmd *cobra.Command, env runEnv, opts planOptions, date string, kit PromptKit, interactive bool, nowFn func() time.Time) error {
	out := cmd.OutOrStdout()
	now := nowFn().In(env.location)

	if opts.name == "" {
		if !interactive {
			opts.name = "marathon"
		} else {
			names := env.catalog.Names()
			idx, err := kit.Select("Training plan", names)
			if err != nil {
				return err
			}
			opts.name = names[idx]
		}
	}

	p, err := resolvePlan(env.catalog, opts)
	if err != nil {
		return err
	}
	race, err := resolveRaceDate(date, interactive, kit.Prompt, now)
	if err != nil {
		return err
	}
	dp, err := anchor(p, race, now, env.log)
	if err != nil {
		return err
	}
	est := env.estimator()

	// Non-TTY fallback: print static table
	if !isTerminal(out) {
		for _, line := range dp.countdown.Summary() {
			_, _ = fmt.Fprintln(out, line)
		}
		return printTable(out, dp.weeks, &est)
	}

	m := newBrowseModel(dp, est, now)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = prog.Run()
	return err
}
