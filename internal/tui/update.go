package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/tui/components/drinklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Leave room for tabs and help
		h, v := docStyle.GetFrameSize()
		bodyHeight := msg.Height - v - 4
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		m.drinks.SetSize(msg.Width-h, bodyHeight)
		m.journal.SetSize(msg.Width-h, bodyHeight)
		m.habits.SetHeight(bodyHeight)
		return m, nil

	case drinklist.DeleteLogMsg:
		m.logToDeleteID = msg.ID
		m.logToDelete = msg.Date
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		}
	}

	switch m.state {
	case StateDrinks:
		m.drinks, cmd = m.drinks.Update(msg)
	case StateHabits:
		m.habits, cmd = m.habits.Update(msg)
	case StateJournal:
		m.journal, cmd = m.journal.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if err := m.tracker.DeleteConsumption(m.userID, m.logToDeleteID); err != nil {
			logger.Error("Failed to delete consumption log", "id", m.logToDeleteID, "error", err)
			m.err = err
		} else {
			m.refresh()
		}
	case key.Matches(msg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.logToDeleteID = ""
	m.logToDelete = ""
	m.state = StateDrinks
	return m, nil
}
