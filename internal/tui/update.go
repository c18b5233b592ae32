package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/tui/components/journeys"
	"github.com/wirdhq/wird/internal/tui/components/today"
	"github.com/wirdhq/wird/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.state == constants.StateAddHabit {
		return m.updateAddHabit(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 6
		m.todayModel.SetSize(msg.Width, contentHeight)
		m.journeysModel.SetSize(msg.Width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateToday {
				m.state = constants.StateJourneys
			} else {
				m.state = constants.StateToday
			}
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case today.AddHabitMsg:
		m.openAddHabitForm()
		return m, m.form.Init()

	case today.CompleteMsg:
		item, err := m.ctx.FindHabit(msg.ID)
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		completion, err := m.ctx.Ledger.CompleteHabit(msg.ID, item.XP)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Failed to complete: %v", err)
			return m, nil
		}
		m.ctx.QueueCompletionEvent(completion)
		m.ctx.PerformAutomaticBackup()
		m.statusMsg = fmt.Sprintf("Completed %q (+%d XP)", item.Title, completion.XPEarned)
		m.refreshToday()
		return m, nil

	case today.UncompleteMsg:
		if err := m.ctx.Ledger.UncompleteHabit(msg.ID, utils.Today()); err != nil {
			m.statusMsg = fmt.Sprintf("Failed to unmark: %v", err)
			return m, nil
		}
		m.ctx.QueueReversalEvent(msg.ID, utils.Today())
		m.statusMsg = "Unmarked."
		m.refreshToday()
		return m, nil

	case journeys.SubscribeMsg:
		if err := m.ctx.Ledger.AddJourney(msg.ID); err != nil {
			m.statusMsg = fmt.Sprintf("Failed to subscribe: %v", err)
			return m, nil
		}
		m.refreshJourneys()
		m.refreshToday()
		m.statusMsg = "Subscribed."
		return m, nil

	case journeys.UnsubscribeMsg:
		if err := m.ctx.Ledger.RemoveJourney(msg.ID); err != nil {
			m.statusMsg = fmt.Sprintf("Failed to unsubscribe: %v", err)
			return m, nil
		}
		m.refreshJourneys()
		m.refreshToday()
		m.statusMsg = "Unsubscribed. Past completions are kept."
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case constants.StateJourneys:
		m.journeysModel, cmd = m.journeysModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) openAddHabitForm() {
	m.habitForm = &HabitFormModel{Slot: string(models.SlotAnytime)}
	m.formError = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dua id").
				Description("Numeric id from the catalog (see 'wird journey show').").
				Value(&m.habitForm.DuaID),
			huh.NewSelect[string]().
				Title("Time slot").
				Options(
					huh.NewOption("Morning", string(models.SlotMorning)),
					huh.NewOption("Anytime", string(models.SlotAnytime)),
					huh.NewOption("Evening", string(models.SlotEvening)),
				).
				Value(&m.habitForm.Slot),
		),
	)
	m.state = constants.StateAddHabit
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		duaID, err := strconv.Atoi(strings.TrimSpace(m.habitForm.DuaID))
		if err != nil {
			m.formError = "Dua id must be a number"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		dua, ok := m.ctx.Catalog.Dua(duaID)
		if !ok {
			m.formError = fmt.Sprintf("Dua %d not found in the catalog", duaID)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		if _, err := m.ctx.Ledger.AddCustomHabit(duaID, models.TimeSlot(m.habitForm.Slot)); err != nil {
			m.formError = fmt.Sprintf("Failed to add habit: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.statusMsg = fmt.Sprintf("Tracking %q", dua.Title)
		m.refreshToday()
		m.state = constants.StateToday
	case huh.StateAborted:
		m.state = constants.StateToday
	}
	return m, tea.Batch(cmds...)
}
