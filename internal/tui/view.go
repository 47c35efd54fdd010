package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateOverview:
		content = docStyle.Render(m.viewOverview())
	case StateDrinks:
		content = docStyle.Render(m.drinks.View())
	case StateHabits:
		content = docStyle.Render(m.viewHabits())
	case StateJournal:
		content = docStyle.Render(m.journal.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var banner string
	if m.err != nil {
		banner = dangerStyle.Render("Error: " + m.err.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func (m Model) viewOverview() string {
	u := m.user
	lastDrink := u.LastDrinkDate
	if lastDrink == "" {
		lastDrink = "none recorded"
	}

	lines := []string{
		headingStyle.Render(fmt.Sprintf("%s · %s", u.Username, m.today)),
		row("Current streak", fmt.Sprintf("%d days", u.CurrentStreak)),
		row("Longest streak", fmt.Sprintf("%d days", u.LongestStreak)),
		row("Last drink", lastDrink),
		row("Drinks per day", fmt.Sprintf("%.1f (target %.1f)", u.CurrentDrinksPerDay, u.TargetDrinksPerDay)),
		row("Risk level", RiskStyle(u.RiskTier).Render(string(u.RiskTier))),

		headingStyle.Render(fmt.Sprintf("Last %d days", m.stats.Days)),
		row("Total drinks", fmt.Sprintf("%g", m.stats.TotalDrinks)),
		row("Average per day", fmt.Sprintf("%.2f", m.stats.AveragePerDay)),
		row("Drinking days", fmt.Sprintf("%d", m.stats.DrinkingDays)),
		row("Sober days", fmt.Sprintf("%d", m.stats.SoberDays)),
		row("Mood improvement", fmt.Sprintf("%+.1f", m.stats.MoodImprovement)),
		row("Top triggers", joinOrNone(m.stats.MostCommonTriggers)),

		headingStyle.Render("Crisis support"),
		row("Events", fmt.Sprintf("%d (%d resolved, %.0f%%)", m.crisis.TotalEvents, m.crisis.ResolvedEvents, m.crisis.ResolutionRate)),
		row("Average severity", fmt.Sprintf("%.1f", m.crisis.AverageSeverity)),
		row("Best strategies", joinOrNone(m.crisis.MostEffectiveStrategies)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func joinOrNone(xs []string) string {
	if len(xs) == 0 {
		return "none"
	}
	return strings.Join(xs, ", ")
}

func (m Model) viewHabits() string {
	if len(m.habits.Rows()) == 0 {
		return "No habit activities in the last 30 days.\nRecord one with 'recoverwise habits do <habit>'."
	}
	return m.habits.View()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete the consumption log for %s?", m.logToDelete)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
