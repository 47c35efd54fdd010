package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/recoverwise/internal/models"
)

var (
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	entries  []models.JournalEntry
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return "No journal entries yet. Add one with 'recoverwise journal add'."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetEntries replaces the entries, which are expected newest first.
func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.entries = entries
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, e := range m.entries {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			dateStyle.Render(e.Date),
			titleStyle.Render(title),
		))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("%s · mood %d · stress %d · confidence %d",
			e.EntryType, e.MoodRating, e.StressLevel, e.ConfidenceLevel)))
		b.WriteString("\n")
		if e.Content != "" {
			b.WriteString(e.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}
