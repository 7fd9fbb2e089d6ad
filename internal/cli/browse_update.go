package cli

import tea "github.com/charmbracelet/bubbletea"

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			if m.cursorCol < len(m.widths)-1 {
				m.cursorCol++
			}
		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case "down", "j":
			if m.cursorRow < len(m.weeks)-1 {
				m.cursorRow++
				m = m.ensureCursorVisible()
			}
		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
				m = m.ensureCursorVisible()
			}
		case "g", "home":
			m.cursorRow = 0
			m = m.ensureCursorVisible()
		case "G", "end":
			if len(m.weeks) > 0 {
				m.cursorRow = len(m.weeks) - 1
			}
			m = m.ensureCursorVisible()
		case "t":
			if row, col, ok := m.todaySlot(); ok {
				m.cursorRow, m.cursorCol = row, col
				m = m.ensureCursorVisible()
			}
		}
	}
	return m, nil
}
