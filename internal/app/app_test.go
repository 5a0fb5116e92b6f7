package app

import (
	"context"
	"testing"

	"github.com/mynameistito/screenshotgun-app-v2/internal/config"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	// Keep the keyring and the real config directory out of reach.
	t.Setenv("CI", "1")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	return &config.Config{
		LogLevel:  "error",
		Endpoint:  "https://example.com/take",
		AccessKey: "sk_test",
		Headless:  true,
		OutputDir: t.TempDir(),
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(context.Background(), nil); err == nil {
		t.Fatal("expected an error for a nil config")
	}
}

func TestNew_WiresDependencies(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	defer a.Close(context.Background())

	if a.Session == nil || a.Splitter == nil || a.Exporter == nil {
		t.Fatal("pipeline dependencies missing")
	}
	if a.Prefs == nil {
		t.Fatal("preference store missing")
	}
	if a.Theme != ui.ThemeLight && a.Theme != ui.ThemeDark {
		t.Errorf("theme resolved to %q", a.Theme)
	}
	if a.Uptime() < 0 {
		t.Error("uptime went backwards")
	}
}

func TestEngineSelection(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	defer a.Close(context.Background())

	remote, err := a.Engine("remote")
	if err != nil || remote != a.Remote {
		t.Errorf("remote selection returned %v, %v", remote, err)
	}

	// The empty name selects the default engine.
	def, err := a.Engine("")
	if err != nil || def != a.Remote {
		t.Errorf("default selection returned %v, %v", def, err)
	}

	local, err := a.Engine("local")
	if err != nil || local != a.Local {
		t.Errorf("local selection returned %v, %v", local, err)
	}

	if _, err := a.Engine("cloud"); err == nil {
		t.Error("expected an error for an unknown engine")
	}
}
