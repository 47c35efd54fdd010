package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/recoverwise/internal/models"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var riskColors = map[models.RiskTier]lipgloss.Color{
	models.RiskNone:     lipgloss.Color("42"),
	models.RiskLow:      lipgloss.Color("42"),
	models.RiskMedium:   lipgloss.Color("214"),
	models.RiskHigh:     lipgloss.Color("202"),
	models.RiskVeryHigh: lipgloss.Color("196"),
}

// RiskStyle returns the style used to render a risk tier.
func RiskStyle(tier models.RiskTier) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := riskColors[tier]; ok {
		style = style.Foreground(c)
	}
	return style
}
