package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wirdhq/wird/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = docStyle.Render(m.todayModel.View())
	case constants.StateJourneys:
		content = docStyle.Render(m.journeysModel.View())
	case constants.StateAddHabit:
		content = m.viewAddHabit()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Today", "Journeys"}
	for i, title := range titles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAddHabit() string {
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), view)
	}
	return view
}

func (m Model) viewStatus() string {
	progress := m.progressLine()
	if m.statusMsg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(m.statusMsg), progress)
	}
	return progress
}

func (m Model) progressLine() string {
	state, err := m.ctx.Ledger.Export()
	if err != nil {
		return ""
	}
	total := len(m.ctx.Catalog.HabitsForToday(state))
	progress, err := m.ctx.Ledger.GetTodayProgress(total)
	if err != nil {
		return ""
	}
	streak, err := m.ctx.Ledger.Streak()
	if err != nil {
		return ""
	}
	return progressStyle.Render(fmt.Sprintf("%d/%d completed · %d XP today · %d day streak",
		progress.Completed, progress.Total, progress.XPEarned, streak))
}
