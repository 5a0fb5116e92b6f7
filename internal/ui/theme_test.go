package ui

import "testing"

func TestValidTheme(t *testing.T) {
	cases := map[string]bool{
		"light":  true,
		"dark":   true,
		"system": true,
		"":       false,
		"blue":   false,
		"Dark":   false,
	}

	for input, want := range cases {
		if got := ValidTheme(input); got != want {
			t.Errorf("ValidTheme(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestResolve_ExplicitPreference(t *testing.T) {
	// An explicit preference wins over any terminal hint.
	t.Setenv("COLORFGBG", "0;15")

	if _, theme := Resolve("dark"); theme != ThemeDark {
		t.Errorf("resolved to %s, want dark", theme)
	}

	t.Setenv("COLORFGBG", "15;0")
	if _, theme := Resolve("light"); theme != ThemeLight {
		t.Errorf("resolved to %s, want light", theme)
	}
}

func TestResolve_SystemFollowsTerminal(t *testing.T) {
	cases := []struct {
		hint string
		want Theme
	}{
		{"15;0", ThemeDark},
		{"0;15", ThemeLight},
		{"12;8", ThemeDark},
		{"0;7", ThemeLight},
		{"", ThemeDark},
		{"garbage", ThemeDark},
	}

	for _, tc := range cases {
		t.Setenv("COLORFGBG", tc.hint)
		if _, theme := Resolve("system"); theme != tc.want {
			t.Errorf("COLORFGBG=%q resolved to %s, want %s", tc.hint, theme, tc.want)
		}
		// An absent preference behaves like "system".
		if _, theme := Resolve(""); theme != tc.want {
			t.Errorf("COLORFGBG=%q with empty pref resolved to %s, want %s", tc.hint, theme, tc.want)
		}
	}
}

func TestUse_InstallsPalette(t *testing.T) {
	old := activePalette
	t.Cleanup(func() { activePalette = old })

	if theme := Use("light"); theme != ThemeLight {
		t.Fatalf("Use resolved to %s, want light", theme)
	}
	if Active().Accent != ColorBlue {
		t.Errorf("light accent is %q, want blue", Active().Accent)
	}

	if theme := Use("dark"); theme != ThemeDark {
		t.Fatalf("Use resolved to %s, want dark", theme)
	}
	if Active().Accent != ColorCyan {
		t.Errorf("dark accent is %q, want cyan", Active().Accent)
	}
}
