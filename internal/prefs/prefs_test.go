package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, err := store.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "dark" {
		t.Errorf("got %q, want %q", value, "dark")
	}

	info, err := os.Stat(filepath.Join(dir, settingsFile))
	if err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("settings file has mode %o, want 0600", perm)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, err := store.Get(KeyTheme); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_Delete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Delete(KeyTheme); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(KeyTheme); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again must stay silent.
	if err := store.Delete(KeyTheme); err != nil {
		t.Errorf("second delete returned %v", err)
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := first.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	value, err := second.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "dark" {
		t.Errorf("got %q, want %q", value, "dark")
	}
}

func TestMemStore(t *testing.T) {
	var store Store = NewMemStore()

	if _, err := store.Get("anything"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, err := store.Get(KeyTheme)
	if err != nil || value != "light" {
		t.Errorf("got %q, %v", value, err)
	}
	if err := store.Delete(KeyTheme); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(KeyTheme); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
