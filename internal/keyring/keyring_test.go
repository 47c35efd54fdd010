package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/recoverwise/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://testuser@localhost:5432/recoverwise?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("  "); err == nil {
		t.Error("SetConnectionString(blank) should return an error")
	}
}

func TestGetAndDeleteNotFound(t *testing.T) {
	gokeyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("host=localhost dbname=recoverwise"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, error = %v, want ErrNotFound", err)
	}
}

func TestResolveConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("host=keyring dbname=recoverwise"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	t.Setenv(constants.ConnectionEnvVar, "")
	got, err := ResolveConnectionString()
	if err != nil || got != "host=keyring dbname=recoverwise" {
		t.Errorf("keyring fallback = %q, %v", got, err)
	}

	t.Setenv(constants.ConnectionEnvVar, "host=env dbname=recoverwise")
	got, err = ResolveConnectionString()
	if err != nil || got != "host=env dbname=recoverwise" {
		t.Errorf("env override = %q, %v", got, err)
	}
}

func TestIsAvailableWithMock(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}
}
