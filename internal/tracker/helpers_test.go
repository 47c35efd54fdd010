package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/storage"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format("2006-01-02")
}

// newTestTracker returns a tracker over a fresh memory store with the clock
// pinned to testNow in UTC.
func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("store Init: %v", err)
	}
	tr := New(store, WithClock(func() time.Time { return testNow }))
	s := DefaultSettings()
	s.Timezone = "UTC"
	if _, err := tr.UpdateSettings(s); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	return tr, store
}

func newTestUser(t *testing.T, tr *Tracker, u models.User) models.User {
	t.Helper()
	saved, err := tr.SaveUser(u)
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	return saved
}

func logDrinks(t *testing.T, tr *Tracker, userID string, n int, drinks float64) models.ConsumptionLog {
	t.Helper()
	l, err := tr.LogConsumption(userID, models.ConsumptionLog{Date: daysAgo(n), DrinksConsumed: drinks})
	if err != nil {
		t.Fatalf("LogConsumption(%s): %v", daysAgo(n), err)
	}
	return l
}
