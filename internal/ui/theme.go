// internal/ui/theme.go
package ui

import (
	"os"
	"strconv"
	"strings"
)

// Theme selects the palette used for styled CLI output.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ValidTheme reports whether s names a selectable theme.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Palette groups the ANSI styles for one theme.
type Palette struct {
	Accent  string
	Heading string
	Muted   string
	Good    string
	Bad     string
}

var (
	darkPalette = Palette{
		Accent:  ColorCyan,
		Heading: ColorBold + ColorWhite,
		Muted:   ColorDim,
		Good:    ColorGreen,
		Bad:     ColorRed,
	}
	lightPalette = Palette{
		Accent:  ColorBlue,
		Heading: ColorBold,
		Muted:   ColorDim,
		Good:    ColorGreen,
		Bad:     ColorRed,
	}
)

var activePalette = darkPalette

// Resolve maps a stored appearance preference to a palette. An empty or
// "system" preference follows the terminal background reported through
// COLORFGBG; terminals that do not export it are treated as dark.
func Resolve(pref string) (Palette, Theme) {
	switch Theme(pref) {
	case ThemeLight:
		return lightPalette, ThemeLight
	case ThemeDark:
		return darkPalette, ThemeDark
	}
	if terminalIsLight() {
		return lightPalette, ThemeLight
	}
	return darkPalette, ThemeDark
}

// Use installs the palette for pref as the process-wide active palette
// and returns the theme it resolved to.
func Use(pref string) Theme {
	palette, theme := Resolve(pref)
	activePalette = palette
	return theme
}

// Active returns the palette installed by Use.
func Active() Palette {
	return activePalette
}

// terminalIsLight sniffs the COLORFGBG hint some terminals export. The
// value is "<fg>;<bg>" with color indexes; backgrounds 0-6 and 8 are the
// dark ones.
func terminalIsLight() bool {
	hint := os.Getenv("COLORFGBG")
	if hint == "" {
		return false
	}
	parts := strings.Split(hint, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	if (bg >= 0 && bg <= 6) || bg == 8 {
		return false
	}
	return true
}
