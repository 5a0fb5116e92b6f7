// internal/cli/theme.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mynameistito/screenshotgun-app-v2/internal/prefs"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the color theme",
	Long: `Shows the current appearance preference, or sets it.

"light" and "dark" pick a fixed palette. "system" follows the terminal
background and is the default when nothing is stored.`,
	Example: `  # Show the current theme
  $ screenshotgun theme

  # Force the light palette
  $ screenshotgun theme light

  # Follow the terminal background again
  $ screenshotgun theme system`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return fmt.Errorf("application not initialized")
	}

	if len(args) == 0 {
		pref, err := appCtx.Prefs.Get(prefs.KeyTheme)
		if errors.Is(err, prefs.ErrNotFound) {
			pref = string(ui.ThemeSystem)
		} else if err != nil {
			return fmt.Errorf("failed to read theme preference: %w", err)
		}

		fmt.Printf("\n%s %s\n", ui.Bold("Theme:"), pref)
		if pref == string(ui.ThemeSystem) {
			_, resolved := ui.Resolve(pref)
			fmt.Printf("%s\n", ui.Dim(fmt.Sprintf("Following the terminal background (currently %s).", resolved)))
		}
		fmt.Println()
		return nil
	}

	choice := strings.ToLower(args[0])
	if !ui.ValidTheme(choice) {
		return fmt.Errorf("invalid theme: %s (must be light, dark, or system)", args[0])
	}

	// "system" is the absence of a stored preference
	if choice == string(ui.ThemeSystem) {
		if err := appCtx.Prefs.Delete(prefs.KeyTheme); err != nil {
			return fmt.Errorf("failed to clear theme preference: %w", err)
		}
	} else {
		if err := appCtx.Prefs.Set(prefs.KeyTheme, choice); err != nil {
			return fmt.Errorf("failed to save theme preference: %w", err)
		}
	}

	applied := ui.Use(choice)

	fmt.Printf("\n%s Theme set to %s.\n", ui.Success("✓"), ui.Bold(choice))
	if choice == string(ui.ThemeSystem) {
		fmt.Printf("%s\n", ui.Dim(fmt.Sprintf("Following the terminal background (currently %s).", applied)))
	}
	fmt.Println()
	return nil
}
