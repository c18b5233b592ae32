package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wirdhq/wird/internal/catalog"
)

type AddHabitMsg struct{}

type CompleteMsg struct {
	ID string
}

type UncompleteMsg struct {
	ID string
}

type Item struct {
	Habit  catalog.HabitItem
	IsDone bool
}

func (i Item) Title() string {
	title := i.Habit.Title
	if i.IsDone {
		return "✓ " + title
	}
	return "○ " + title
}

func (i Item) Description() string {
	slot := string(i.Habit.TimeSlot)
	if i.IsDone {
		return fmt.Sprintf("%s · completed · %d XP earned", slot, i.Habit.XP)
	}
	return fmt.Sprintf("%s · %d XP", slot, i.Habit.XP)
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add    key.Binding
	Mark   key.Binding
	Unmark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []catalog.HabitItem, done map[string]bool, width, height int) Model {
	l := list.New(buildItems(habits, done), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Mark, keys.Unmark}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Mark, keys.Unmark}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func buildItems(habits []catalog.HabitItem, done map[string]bool) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:  h,
			IsDone: done[h.HabitID],
		}
	}
	return items
}

func (m *Model) SetHabits(habits []catalog.HabitItem, done map[string]bool) {
	m.list.SetItems(buildItems(habits, done))
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
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Mark):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDone {
				return m, func() tea.Msg { return CompleteMsg{ID: i.Habit.HabitID} }
			}
		case key.Matches(msg, m.keys.Unmark):
			if i, ok := m.list.SelectedItem().(Item); ok && i.IsDone {
				return m, func() tea.Msg { return UncompleteMsg{ID: i.Habit.HabitID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing to practice today.\n  Press 'tab' to browse journeys or 'a' to add a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
