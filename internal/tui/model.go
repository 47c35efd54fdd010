package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/tui/components/drinklist"
	"github.com/julianstephens/recoverwise/internal/tui/components/journal"
	"github.com/julianstephens/recoverwise/internal/utils"
)

type SessionState int

const (
	StateOverview SessionState = iota
	StateDrinks
	StateHabits
	StateJournal
	StateConfirmDelete
)

var tabTitles = []string{"Overview", "Drinks", "Habits", "Journal"}

type Model struct {
	tracker       *tracker.Tracker
	userID        string
	state         SessionState
	keys          KeyMap
	help          help.Model
	drinks        drinklist.Model
	habits        table.Model
	journal       journal.Model
	user          models.User
	stats         models.ConsumptionStats
	crisis        models.CrisisStats
	today         string
	logToDeleteID string
	logToDelete   string
	err           error
	quitting      bool
	width         int
	height        int
}

func NewModel(t *tracker.Tracker, userID string) Model {
	m := Model{
		tracker: t,
		userID:  userID,
		state:   StateOverview,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		drinks:  drinklist.New(nil, 0, 0),
		habits: table.New(
			table.WithColumns(habitColumns),
			table.WithFocused(true),
			table.WithHeight(10),
		),
		journal: journal.New(0, 0),
	}
	m.refresh()
	return m
}

var habitColumns = []table.Column{
	{Title: "Habit", Width: 28},
	{Title: "Uses", Width: 6},
	{Title: "Avg rating", Width: 10},
	{Title: "Avg min", Width: 8},
	{Title: "Urges replaced", Width: 14},
}

// refresh reloads everything the dashboard shows. The first error is kept
// for display and the rest of the load is skipped.
func (m *Model) refresh() {
	m.err = m.load()
}

func (m *Model) load() error {
	user, err := m.tracker.GetUser(m.userID)
	if err != nil {
		return err
	}
	m.user = user

	today, err := m.tracker.Today()
	if err != nil {
		return err
	}
	m.today = today

	now, err := m.tracker.Now()
	if err != nil {
		return err
	}

	if m.stats, err = m.tracker.ConsumptionStats(m.userID, constants.StatsWindowDays); err != nil {
		return err
	}
	if m.crisis, err = m.tracker.CrisisStats(m.userID, constants.StatsWindowDays); err != nil {
		return err
	}

	logs, err := m.tracker.ListConsumption(m.userID, utils.DaysAgo(now, constants.StatsWindowDays-1), today)
	if err != nil {
		return err
	}
	m.drinks.SetLogs(logs)

	effectiveness, err := m.tracker.HabitEffectiveness(m.userID, constants.StatsWindowDays)
	if err != nil {
		return err
	}
	rows := make([]table.Row, len(effectiveness))
	for i, e := range effectiveness {
		rows[i] = table.Row{
			e.Title,
			fmt.Sprintf("%d", e.TotalUses),
			fmt.Sprintf("%.1f", e.AvgEffectiveness),
			fmt.Sprintf("%.0f", e.AvgDuration),
			fmt.Sprintf("%d", e.UrgesReplaced),
		}
	}
	m.habits.SetRows(rows)

	entries, err := m.tracker.ListEntries(m.userID, tracker.JournalFilter{})
	if err != nil {
		return err
	}
	m.journal.SetEntries(entries)
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	switch m.state {
	case StateDrinks:
		keys = append(keys, m.drinks.Keys().Delete)
	case StateConfirmDelete:
		keys = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateDrinks {
		actions = []key.Binding{m.drinks.Keys().Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
