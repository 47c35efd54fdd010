package profile

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
	u, err := tr.SaveUser(models.User{Username: "sam", Gender: models.GenderFemale, CurrentDrinksPerDay: 3})
	if err != nil {
		t.Fatalf("failed to save user: %v", err)
	}
	return &cli.Context{Store: store, Tracker: tr}, u
}

func TestProfileShowCmd(t *testing.T) {
	ctx, _ := setupContext(t)
	if err := (&ProfileShowCmd{}).Run(ctx); err != nil {
		t.Errorf("show failed: %v", err)
	}

	ctx.User = "nobody"
	if err := (&ProfileShowCmd{}).Run(ctx); !errors.Is(err, cli.ErrNoProfile) {
		t.Errorf("show unknown profile = %v, want ErrNoProfile", err)
	}
}

func TestProfileSetCmd(t *testing.T) {
	ctx, u := setupContext(t)
	if u.RiskTier != models.RiskHigh {
		t.Fatalf("initial risk tier = %s, want high", u.RiskTier)
	}

	gender := "male"
	email := "sam@example.com"
	if err := (&ProfileSetCmd{Gender: &gender, Email: &email}).Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Email != email || got.Gender != models.GenderMale {
		t.Errorf("profile = %+v", got)
	}
	if got.RiskTier != models.RiskMedium {
		t.Errorf("risk tier = %s, want medium after switching to male", got.RiskTier)
	}

	bad := "robot"
	if err := (&ProfileSetCmd{Gender: &bad}).Run(ctx); err == nil {
		t.Error("expected an error for an invalid gender")
	}

	if err := (&ProfileSetCmd{}).Run(ctx); err != nil {
		t.Errorf("set with no flags should be a no-op, got %v", err)
	}
}

func TestProfileStreakCmd(t *testing.T) {
	ctx, u := setupContext(t)

	if err := (&ProfileStreakCmd{Current: -1}).Validate(); err == nil {
		t.Error("expected Validate to reject a negative streak")
	}

	if err := (&ProfileStreakCmd{Current: 5, Longest: 9}).Run(ctx); err != nil {
		t.Fatalf("streak failed: %v", err)
	}
	if err := (&ProfileStreakCmd{Current: 0, Longest: 2}).Run(ctx); err != nil {
		t.Fatalf("streak reset failed: %v", err)
	}
	got, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentStreak != 0 || got.LongestStreak != 9 {
		t.Errorf("streak = %d/%d, want 0/9", got.CurrentStreak, got.LongestStreak)
	}
}

func TestProfileSyncCmd(t *testing.T) {
	ctx, u := setupContext(t)
	for _, l := range []models.ConsumptionLog{
		{Date: "2024-05-14", DrinksConsumed: 0},
		{Date: "2024-05-15", DrinksConsumed: 0},
	} {
		if _, err := ctx.Tracker.LogConsumption(u.ID, l); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ctx.Tracker.UpdateStreak(u.ID, models.Streak{}); err != nil {
		t.Fatal(err)
	}

	if err := (&ProfileSyncCmd{}).Run(ctx); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	got, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentStreak != 2 || got.RiskTier != models.RiskLow {
		t.Errorf("synced profile = %+v", got)
	}
}

func TestProfileDeleteCmd(t *testing.T) {
	ctx, u := setupContext(t)
	if _, err := ctx.Tracker.LogConsumption(u.ID, models.ConsumptionLog{DrinksConsumed: 1}); err != nil {
		t.Fatal(err)
	}

	if err := (&ProfileDeleteCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := ctx.Tracker.GetUser(u.ID); !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("GetUser after delete = %v, want ErrNotFound", err)
	}
	logs, err := ctx.Tracker.ListConsumption(u.ID, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Errorf("expected logs to be deleted, got %d", len(logs))
	}
}
