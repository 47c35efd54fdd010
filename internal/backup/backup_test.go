package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/storage/sqlite"
)

// stepClock returns a clock that advances one minute per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

func setupSQLite(t *testing.T, users string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recoverwise.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Write(constants.KeyUsers, []byte(users)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func readUsers(t *testing.T, path string) string {
	t.Helper()
	store := sqlite.NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer store.Close()
	data, err := store.Read(constants.KeyUsers)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return string(data)
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/u/.config/recoverwise/recoverwise.db", true},
		{"data.json", true},
		{constants.MemoryConfigPath, false},
		{"postgresql", false},
		{"postgres://localhost/recoverwise", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCreateBackup(t *testing.T) {
	path := setupSQLite(t, `[{"id":"u1"}]`)
	m := NewManager(path, WithClock(stepClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local))))

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	want := filepath.Join(m.GetBackupDir(), "recoverwise-20240515-100000.db")
	if backupPath != want {
		t.Errorf("backup path = %s, want %s", backupPath, want)
	}
	if got := readUsers(t, backupPath); got != `[{"id":"u1"}]` {
		t.Errorf("backup users = %s", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.CreateBackup(); err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestCreateBackupUnsupported(t *testing.T) {
	m := NewManager(constants.MemoryConfigPath)
	if _, err := m.CreateBackup(); err != ErrUnsupported {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	path := setupSQLite(t, `[]`)
	fixed := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	m := NewManager(path, WithClock(func() time.Time { return fixed }))

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d: %v", i, err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}
	if !seen[filepath.Join(m.GetBackupDir(), "recoverwise-20240515-100000-2.db")] {
		t.Errorf("expected counter suffix, got %v", seen)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups returned %d, want 3", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	path := setupSQLite(t, `[]`)
	m := NewManager(path, WithClock(stepClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local))))

	var first string
	for i := 0; i < constants.MaxBackups+3; i++ {
		p, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d: %v", i, err)
		}
		if i == 0 {
			first = p
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("oldest backup %s should have been rotated out", first)
	}
}

func TestListBackups(t *testing.T) {
	path := setupSQLite(t, `[]`)
	m := NewManager(path, WithClock(stepClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local))))

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups with no directory: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup: %v", err)
		}
	}
	// Files that do not look like backups are ignored
	if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "recoverwise-garbage.db"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups returned %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v then %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestRestoreBackup(t *testing.T) {
	path := setupSQLite(t, `[{"id":"original"}]`)
	m := NewManager(path, WithClock(stepClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local))))

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	store := sqlite.NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := store.Write(constants.KeyUsers, []byte(`[{"id":"changed"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	store.Close()

	safety, err := m.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}
	if safety == "" {
		t.Fatal("expected a pre-restore backup")
	}
	if got := readUsers(t, path); got != `[{"id":"original"}]` {
		t.Errorf("restored users = %s", got)
	}
	if got := readUsers(t, safety); got != `[{"id":"changed"}]` {
		t.Errorf("pre-restore backup users = %s", got)
	}
}

func TestRestoreBackupRejectsInvalid(t *testing.T) {
	path := setupSQLite(t, `[]`)
	m := NewManager(path)

	if _, err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RestoreBackup(bogus); err == nil {
		t.Error("expected error for corrupted backup")
	}
	if got := readUsers(t, path); got != `[]` {
		t.Errorf("database changed after failed restore: %s", got)
	}
}

func TestJSONStoreBackupAndRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recoverwise.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Write(constants.KeyUsers, []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	m := NewManager(path, WithClock(stepClock(time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local))))
	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup path %s should keep the .json suffix", backupPath)
	}

	if err := store.Write(constants.KeyUsers, []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}

	reloaded := storage.NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := reloaded.Read(constants.KeyUsers)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != `[{"id":"u1"}]` {
		t.Errorf("restored users = %s", data)
	}
}
