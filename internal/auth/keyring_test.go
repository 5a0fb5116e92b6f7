package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// forceFileStorage routes credential storage into a throwaway home
// directory so tests never touch the real keyring.
func forceFileStorage(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CI", "1")
	old := fileBasedStorageCache
	fileBasedStorageCache = nil
	t.Cleanup(func() { fileBasedStorageCache = old })
	return home
}

func TestAccessKeyRoundtrip(t *testing.T) {
	home := forceFileStorage(t)

	if err := SaveAccessKey("sk_test_123"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	key, err := LoadAccessKey()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if key != "sk_test_123" {
		t.Errorf("got %q, want %q", key, "sk_test_123")
	}

	info, err := os.Stat(filepath.Join(home, FallbackDir, accessKeyFile))
	if err != nil {
		t.Fatalf("credential file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credential file has mode %o, want 0600", perm)
	}
}

func TestSaveAccessKey_RejectsEmpty(t *testing.T) {
	forceFileStorage(t)

	if err := SaveAccessKey("   "); err == nil {
		t.Fatal("expected an error for a blank key")
	}
}

func TestLoadAccessKey_NotStored(t *testing.T) {
	forceFileStorage(t)

	if _, err := LoadAccessKey(); !errors.Is(err, ErrNotStored) {
		t.Errorf("expected ErrNotStored, got %v", err)
	}
}

func TestDeleteAccessKey(t *testing.T) {
	forceFileStorage(t)

	if err := SaveAccessKey("sk_test_123"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := DeleteAccessKey(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := LoadAccessKey(); !errors.Is(err, ErrNotStored) {
		t.Errorf("expected ErrNotStored after delete, got %v", err)
	}

	// Deleting again must stay silent.
	if err := DeleteAccessKey(); err != nil {
		t.Errorf("second delete returned %v", err)
	}
}
