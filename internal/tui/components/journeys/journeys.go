package journeys

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wirdhq/wird/internal/models"
)

type SubscribeMsg struct {
	ID int
}

type UnsubscribeMsg struct {
	ID int
}

type Item struct {
	Journey  models.Journey
	DuaCount int
	IsActive bool
}

func (i Item) Title() string {
	if i.IsActive {
		return "✓ " + i.Journey.Name
	}
	return "  " + i.Journey.Name
}

func (i Item) Description() string {
	status := "not subscribed"
	if i.IsActive {
		status = "subscribed"
	}
	return fmt.Sprintf("%s · %d duas · %s", i.Journey.Description, i.DuaCount, status)
}

func (i Item) FilterValue() string { return i.Journey.Name }

type KeyMap struct {
	Subscribe   key.Binding
	Unsubscribe key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Subscribe: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "subscribe"),
		),
		Unsubscribe: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unsubscribe"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Journeys"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Subscribe, keys.Unsubscribe}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Subscribe, keys.Unsubscribe}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetJourneys(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Subscribe):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsActive {
				return m, func() tea.Msg { return SubscribeMsg{ID: i.Journey.ID} }
			}
		case key.Matches(msg, m.keys.Unsubscribe):
			if i, ok := m.list.SelectedItem().(Item); ok && i.IsActive {
				return m, func() tea.Msg { return UnsubscribeMsg{ID: i.Journey.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
