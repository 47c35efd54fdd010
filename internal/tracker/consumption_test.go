package tracker

import (
	"errors"
	"testing"

	"github.com/julianstephens/recoverwise/internal/models"
)

func TestLogConsumptionOverwritesSameDay(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})

	first, err := tr.LogConsumption(u.ID, models.ConsumptionLog{Date: daysAgo(0), DrinksConsumed: 2, Notes: "first"})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := tr.LogConsumption(u.ID, models.ConsumptionLog{Date: daysAgo(0), DrinksConsumed: 1, Notes: "second"})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	logs, err := tr.ListConsumption(u.ID, "", "")
	if err != nil {
		t.Fatalf("ListConsumption: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].DrinksConsumed != 1 || logs[0].Notes != "second" {
		t.Errorf("stored log = %+v, want second values", logs[0])
	}
	if second.ID != first.ID {
		t.Errorf("overwrite changed id: %s -> %s", first.ID, second.ID)
	}
}

func TestLogConsumptionDefaultsToToday(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})

	l, err := tr.LogConsumption(u.ID, models.ConsumptionLog{Triggers: []string{" work ", ""}})
	if err != nil {
		t.Fatalf("LogConsumption: %v", err)
	}
	if l.Date != "2024-05-15" {
		t.Errorf("Date = %q, want today", l.Date)
	}
	if len(l.Triggers) != 1 || l.Triggers[0] != "work" {
		t.Errorf("Triggers = %q, want [work]", l.Triggers)
	}
}

func TestLogConsumptionRejectsNegative(t *testing.T) {
	tr, _ := newTestTracker(t)
	if _, err := tr.LogConsumption("u", models.ConsumptionLog{Date: daysAgo(0), DrinksConsumed: -1}); err == nil {
		t.Error("negative drinks accepted")
	}
}

func TestUpdateConsumptionKeepsOneLogPerDay(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})

	a := logDrinks(t, tr, u.ID, 1, 3)
	logDrinks(t, tr, u.ID, 0, 1)

	a.Date = daysAgo(0)
	a.DrinksConsumed = 0
	if _, err := tr.UpdateConsumption(u.ID, a); err != nil {
		t.Fatalf("UpdateConsumption: %v", err)
	}

	logs, _ := tr.ListConsumption(u.ID, "", "")
	if len(logs) != 1 || logs[0].ID != a.ID || logs[0].DrinksConsumed != 0 {
		t.Errorf("logs after move = %+v", logs)
	}

	got, _ := tr.GetUser(u.ID)
	if got.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after update", got.CurrentStreak)
	}
}

func TestUpdateAndDeleteScopedToUser(t *testing.T) {
	tr, _ := newTestTracker(t)
	owner := newTestUser(t, tr, models.User{})
	other := newTestUser(t, tr, models.User{})
	l := logDrinks(t, tr, owner.ID, 0, 2)

	if _, err := tr.UpdateConsumption(other.ID, l); !errors.Is(err, ErrNotFound) {
		t.Errorf("update by other user error = %v, want ErrNotFound", err)
	}
	if err := tr.DeleteConsumption(other.ID, l.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete by other user error = %v, want ErrNotFound", err)
	}
	if err := tr.DeleteConsumption(owner.ID, l.ID); err != nil {
		t.Errorf("delete by owner: %v", err)
	}
	if _, err := tr.GetConsumption(owner.ID, l.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConsumption after delete error = %v, want ErrNotFound", err)
	}
}

func TestListConsumptionRange(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})
	for _, n := range []int{0, 5, 2, 9} {
		logDrinks(t, tr, u.ID, n, 1)
	}

	logs, err := tr.ListConsumption(u.ID, daysAgo(5), daysAgo(1))
	if err != nil {
		t.Fatalf("ListConsumption: %v", err)
	}
	if len(logs) != 2 || logs[0].Date != daysAgo(5) || logs[1].Date != daysAgo(2) {
		t.Errorf("range result = %+v", logs)
	}
}

func TestConsumptionOn(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})
	logDrinks(t, tr, u.ID, 0, 2)

	if _, ok, err := tr.ConsumptionOn(u.ID, daysAgo(0)); err != nil || !ok {
		t.Errorf("ConsumptionOn(today) ok = %v, err = %v", ok, err)
	}
	if _, ok, _ := tr.ConsumptionOn(u.ID, daysAgo(1)); ok {
		t.Error("ConsumptionOn(yesterday) found a log")
	}
}

func TestConsumptionStatsEndToEnd(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})

	logDrinks(t, tr, u.ID, 0, 0)
	logDrinks(t, tr, u.ID, 1, 0)
	logDrinks(t, tr, u.ID, 2, 2)

	s, err := tr.ConsumptionStats(u.ID, 30)
	if err != nil {
		t.Fatalf("ConsumptionStats: %v", err)
	}
	if s.TotalDrinks != 2 || s.DrinkingDays != 1 || s.SoberDays != 29 || s.AveragePerDay != 2.0/30 {
		t.Errorf("stats = %+v", s)
	}

	got, err := tr.GetUser(u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got.CurrentStreak)
	}
	if got.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", got.LongestStreak)
	}
	if got.CurrentDrinksPerDay != 2.0/3 {
		t.Errorf("CurrentDrinksPerDay = %v, want %v", got.CurrentDrinksPerDay, 2.0/3)
	}
	if got.RiskTier != models.RiskLow {
		t.Errorf("RiskTier = %s, want low", got.RiskTier)
	}
	if got.LastDrinkDate != daysAgo(2) {
		t.Errorf("LastDrinkDate = %q, want %q", got.LastDrinkDate, daysAgo(2))
	}
}

func TestConsumptionStatsNegativeDays(t *testing.T) {
	tr, _ := newTestTracker(t)
	u := newTestUser(t, tr, models.User{})
	logDrinks(t, tr, u.ID, 0, 4)

	s, err := tr.ConsumptionStats(u.ID, -3)
	if err != nil {
		t.Fatalf("ConsumptionStats: %v", err)
	}
	if s.Days != 0 || s.SoberDays != 0 || s.AveragePerDay != 0 {
		t.Errorf("stats = %+v, want zero days", s)
	}
	if s.TotalDrinks != 4 || s.DrinkingDays != 1 {
		t.Errorf("today's log missing from stats: %+v", s)
	}
}
