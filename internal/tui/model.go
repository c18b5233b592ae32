package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wirdhq/wird/internal/cli"
	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/logger"
	"github.com/wirdhq/wird/internal/tui/components/journeys"
	"github.com/wirdhq/wird/internal/tui/components/today"
)

type HabitFormModel struct {
	DuaID string
	Slot  string
}

type Model struct {
	ctx           *cli.Context
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	journeysModel journeys.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	quitting      bool
	width         int
	height        int
	statusMsg     string
	formError     string
}

func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:           ctx,
		state:         constants.StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		todayModel:    today.New(nil, nil, 0, 0),
		journeysModel: journeys.New(nil, 0, 0),
	}
	m.refreshToday()
	m.refreshJourneys()
	return m
}

// refreshToday reloads the today checklist from the ledger and catalog.
func (m *Model) refreshToday() {
	state, err := m.ctx.Ledger.Export()
	if err != nil {
		logger.Warn("Failed to load ledger state", "error", err)
		return
	}
	done, err := m.ctx.Ledger.CompletedHabitIDsForToday()
	if err != nil {
		logger.Warn("Failed to load today's completions", "error", err)
		done = map[string]bool{}
	}
	m.todayModel.SetHabits(m.ctx.Catalog.HabitsForToday(state), done)
}

func (m *Model) refreshJourneys() {
	activeIDs, err := m.ctx.Ledger.ActiveJourneyIDs()
	if err != nil {
		logger.Warn("Failed to load active journeys", "error", err)
		return
	}
	active := make(map[int]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	all := m.ctx.Catalog.Journeys()
	items := make([]journeys.Item, len(all))
	for i, j := range all {
		items[i] = journeys.Item{
			Journey:  j,
			DuaCount: len(m.ctx.Catalog.JourneyDuas(j.ID)),
			IsActive: active[j.ID],
		}
	}
	m.journeysModel.SetJourneys(items)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}
