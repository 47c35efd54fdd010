package drinks

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/tracker"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func setupContext(t *testing.T) (*cli.Context, models.User) {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	tr := tracker.New(store, tracker.WithClock(func() time.Time { return testNow }))
	s := tracker.DefaultSettings()
	s.Timezone = "UTC"
	if _, err := tr.UpdateSettings(s); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	u, err := tr.SaveUser(models.User{Username: "sam"})
	if err != nil {
		t.Fatalf("failed to save user: %v", err)
	}
	return &cli.Context{Store: store, Tracker: tr}, u
}

func TestLogCmd(t *testing.T) {
	ctx, u := setupContext(t)

	for _, cmd := range []*LogCmd{
		{Count: 2, Date: "2024-05-13", Types: "beer, wine", Triggers: "work"},
		{Count: 0, Date: "yesterday"},
		{Count: 0, Date: "today"},
	} {
		if err := cmd.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}

	logs, err := ctx.Tracker.ListConsumption(u.ID, "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("ListConsumption: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}

	l, ok, err := ctx.Tracker.ConsumptionOn(u.ID, "2024-05-13")
	if err != nil || !ok {
		t.Fatalf("ConsumptionOn = %v, %v", ok, err)
	}
	if len(l.DrinkTypes) != 2 || l.DrinkTypes[1] != "wine" {
		t.Errorf("drink types = %v", l.DrinkTypes)
	}

	synced, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if synced.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", synced.CurrentStreak)
	}
}

func TestLogCmdValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     LogCmd
		wantErr bool
	}{
		{"sober day", LogCmd{}, false},
		{"with moods", LogCmd{Count: 1.5, MoodBefore: 3, MoodAfter: 6}, false},
		{"negative", LogCmd{Count: -1}, true},
		{"mood too high", LogCmd{MoodBefore: 11}, true},
		{"mood negative", LogCmd{MoodAfter: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogCmdInvalidDate(t *testing.T) {
	ctx, _ := setupContext(t)
	if err := (&LogCmd{Count: 1, Date: "15/05/2024"}).Run(ctx); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestEditCmd(t *testing.T) {
	ctx, u := setupContext(t)
	l, err := ctx.Tracker.LogConsumption(u.ID, models.ConsumptionLog{Date: "2024-05-14", DrinksConsumed: 4})
	if err != nil {
		t.Fatal(err)
	}

	count := 1.0
	notes := "dinner out"
	if err := (&EditCmd{ID: l.ID, Count: &count, Notes: &notes}).Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	got, err := ctx.Tracker.GetConsumption(u.ID, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.DrinksConsumed != 1 || got.Notes != "dinner out" || got.Date != "2024-05-14" {
		t.Errorf("edited log = %+v", got)
	}

	if err := (&EditCmd{ID: "missing"}).Run(ctx); !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("edit of missing log = %v, want ErrNotFound", err)
	}
}

func TestDeleteCmd(t *testing.T) {
	ctx, u := setupContext(t)
	l, err := ctx.Tracker.LogConsumption(u.ID, models.ConsumptionLog{Date: "2024-05-14", DrinksConsumed: 2})
	if err != nil {
		t.Fatal(err)
	}

	if err := (&DeleteCmd{ID: l.ID}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := ctx.Tracker.ConsumptionOn(u.ID, "2024-05-14"); ok {
		t.Error("log still present after delete")
	}
	if err := (&DeleteCmd{ID: l.ID}).Run(ctx); err == nil {
		t.Error("expected an error deleting twice")
	}
}

func TestListAndStatsCmd(t *testing.T) {
	ctx, u := setupContext(t)
	for _, l := range []models.ConsumptionLog{
		{Date: "2024-05-10", DrinksConsumed: 3, Triggers: []string{"work"}},
		{Date: "2024-05-14", DrinksConsumed: 0},
	} {
		if _, err := ctx.Tracker.LogConsumption(u.ID, l); err != nil {
			t.Fatal(err)
		}
	}

	if err := (&ListCmd{Days: 7}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
	if err := (&ListCmd{From: "2024-05-20", To: "2024-05-01", Days: 30}).Run(ctx); err == nil {
		t.Error("expected an error for an inverted range")
	}
	if err := (&ListCmd{Days: 0}).Validate(); err == nil {
		t.Error("expected Validate to reject zero days")
	}
	if err := (&StatsCmd{Days: 30}).Run(ctx); err != nil {
		t.Errorf("stats failed: %v", err)
	}
	if err := (&StatsCmd{Days: -1}).Validate(); err == nil {
		t.Error("expected Validate to reject negative days")
	}
}
