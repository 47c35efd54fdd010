package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/tui/components/drinklist"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func setupModel(t *testing.T) (Model, *tracker.Tracker, string) {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	tr := tracker.New(store, tracker.WithClock(func() time.Time { return testNow }))
	settings := tracker.DefaultSettings()
	settings.Timezone = "UTC"
	if _, err := tr.UpdateSettings(settings); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if _, err := tr.SeedCatalog(); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	u, err := tr.SaveUser(models.User{Username: "sam", Gender: models.GenderFemale})
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	for i, drinks := range []float64{0, 0, 2} {
		date := testNow.AddDate(0, 0, -i).Format("2006-01-02")
		if _, err := tr.LogConsumption(u.ID, models.ConsumptionLog{Date: date, DrinksConsumed: drinks}); err != nil {
			t.Fatalf("LogConsumption: %v", err)
		}
	}
	if _, err := tr.AddActivity(u.ID, models.HabitActivity{HabitReplacementID: "Deep Breathing Exercise", EffectivenessRating: 8}); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	m := NewModel(tr, u.ID)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), tr, u.ID
}

func TestNewModelLoadsDashboard(t *testing.T) {
	m, _, _ := setupModel(t)

	if m.err != nil {
		t.Fatalf("load error: %v", m.err)
	}
	if m.user.CurrentStreak != 2 {
		t.Errorf("streak = %d, want 2", m.user.CurrentStreak)
	}
	if m.drinks.Len() != 3 {
		t.Errorf("drink list has %d items, want 3", m.drinks.Len())
	}
	if len(m.habits.Rows()) != 1 || m.habits.Rows()[0][0] != "Deep Breathing Exercise" {
		t.Errorf("habit rows = %v", m.habits.Rows())
	}

	view := m.View()
	for _, want := range []string{"sam", "Current streak", "2 days", "Overview"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestTabNavigation(t *testing.T) {
	m, _, _ := setupModel(t)

	tests := []struct {
		msg  tea.KeyMsg
		want SessionState
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, StateDrinks},
		{tea.KeyMsg{Type: tea.KeyTab}, StateHabits},
		{tea.KeyMsg{Type: tea.KeyTab}, StateJournal},
		{tea.KeyMsg{Type: tea.KeyTab}, StateOverview},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, StateJournal},
		{runeKey("l"), StateOverview},
		{runeKey("h"), StateJournal},
	}
	for i, tt := range tests {
		next, _ := m.Update(tt.msg)
		m = next.(Model)
		if m.state != tt.want {
			t.Fatalf("step %d (%s): state = %d, want %d", i, tt.msg.String(), m.state, tt.want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := setupModel(t)

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if !m.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := setupModel(t)

	next, _ := m.Update(runeKey("?"))
	m = next.(Model)
	if !m.help.ShowAll {
		t.Error("expected full help after ?")
	}
}

func TestDeleteLogFlow(t *testing.T) {
	m, tr, userID := setupModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	next, cmd := m.Update(runeKey("d"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	msg, ok := cmd().(drinklist.DeleteLogMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want DeleteLogMsg", cmd())
	}
	// Newest log is selected first
	if msg.Date != "2024-05-15" {
		t.Errorf("delete date = %s, want 2024-05-15", msg.Date)
	}

	next, _ = m.Update(msg)
	m = next.(Model)
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %d, want confirm delete", m.state)
	}
	if !strings.Contains(m.View(), "2024-05-15") {
		t.Error("confirmation should name the date")
	}

	// Cancel leaves the log in place
	next, _ = m.Update(runeKey("n"))
	m = next.(Model)
	if m.state != StateDrinks || m.drinks.Len() != 3 {
		t.Fatalf("after cancel: state %d, %d logs", m.state, m.drinks.Len())
	}

	next, _ = m.Update(msg)
	m = next.(Model)
	next, _ = m.Update(runeKey("y"))
	m = next.(Model)
	if m.err != nil {
		t.Fatalf("delete error: %v", m.err)
	}
	if m.drinks.Len() != 2 {
		t.Errorf("drink list has %d items after delete, want 2", m.drinks.Len())
	}
	if _, ok, _ := tr.ConsumptionOn(userID, "2024-05-15"); ok {
		t.Error("log for 2024-05-15 should be deleted")
	}
}

func TestRiskStyle(t *testing.T) {
	for _, tier := range []models.RiskTier{models.RiskLow, models.RiskVeryHigh, "unknown"} {
		if got := RiskStyle(tier).Render(string(tier)); !strings.Contains(got, string(tier)) {
			t.Errorf("RiskStyle(%s) rendered %q", tier, got)
		}
	}
}
