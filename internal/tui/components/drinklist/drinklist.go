package drinklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/recoverwise/internal/models"
)

type DeleteLogMsg struct {
	ID   string
	Date string
}

type Item struct {
	Log models.ConsumptionLog
}

func (i Item) Title() string {
	if i.Log.DrinksConsumed == 0 {
		return i.Log.Date + " · sober"
	}
	return fmt.Sprintf("%s · %g drinks", i.Log.Date, i.Log.DrinksConsumed)
}

func (i Item) Description() string {
	var parts []string
	if len(i.Log.Triggers) > 0 {
		parts = append(parts, "triggers: "+strings.Join(i.Log.Triggers, ", "))
	}
	if i.Log.HasMood() {
		parts = append(parts, fmt.Sprintf("mood %d → %d", i.Log.MoodBefore, i.Log.MoodAfter))
	}
	if len(parts) == 0 {
		return "no details"
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Log.Date }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(logs []models.ConsumptionLog, width, height int) Model {
	l := list.New(toItems(logs), list.NewDefaultDelegate(), width, height)
	l.Title = "Drinks"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered by the dashboard
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

// toItems lists logs newest first.
func toItems(logs []models.ConsumptionLog) []list.Item {
	items := make([]list.Item, len(logs))
	for i, l := range logs {
		items[len(logs)-1-i] = Item{Log: l}
	}
	return items
}

func (m *Model) SetLogs(logs []models.ConsumptionLog) {
	m.list.SetItems(toItems(logs))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Delete) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return DeleteLogMsg{ID: i.Log.ID, Date: i.Log.Date} }
		}
		return m, nil
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No drinks logged in the last 30 days.\n  Log today with 'recoverwise drinks log <count>'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
