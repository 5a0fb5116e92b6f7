// internal/cli/key.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mynameistito/screenshotgun-app-v2/internal/auth"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
)

var revealKey bool

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the capture service access key",
	Long: `Store, inspect, and remove the access key used to authenticate
against the capture service.

The key is kept in your OS keyring when one is available, otherwise in
a file readable only by your user. A key passed with --access-key or
the SCREENSHOTGUN_ACCESS_KEY environment variable takes precedence over
the stored one.`,
	Example: `  # Store a key (prompted, input stays hidden)
  $ screenshotgun key set

  # Store a key directly
  $ screenshotgun key set sk_live_abc123

  # Check which key is stored
  $ screenshotgun key show

  # Remove the stored key
  $ screenshotgun key clear`,
}

var keySetCmd = &cobra.Command{
	Use:   "set [access-key]",
	Short: "Store the access key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeySet,
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored access key",
	RunE:  runKeyShow,
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored access key",
	RunE:  runKeyClear,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)

	keyShowCmd.Flags().BoolVar(&revealKey, "reveal", false, "Print the key in full instead of masked")
}

func runKeySet(cmd *cobra.Command, args []string) error {
	var key string

	if len(args) == 1 {
		key = args[0]
	} else {
		fmt.Print("Access key: ")
		input, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read access key: %w", err)
		}
		key = string(input)
	}

	if err := auth.SaveAccessKey(key); err != nil {
		return fmt.Errorf("failed to save access key: %w", err)
	}

	fmt.Printf("\n%s Access key saved.\n\n", ui.Success("✓"))
	return nil
}

func runKeyShow(cmd *cobra.Command, args []string) error {
	key, err := auth.LoadAccessKey()
	if errors.Is(err, auth.ErrNotStored) {
		fmt.Println("\nNo access key stored.")
		fmt.Println("\nStore one with:")
		fmt.Println("  screenshotgun key set")
		fmt.Println()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load access key: %w", err)
	}

	if revealKey {
		fmt.Printf("\n%s\n\n", key)
		return nil
	}

	fmt.Printf("\n%s %s\n", ui.Bold("Access key:"), maskKey(key))
	fmt.Printf("%s\n\n", ui.Dim("Use --reveal to print it in full."))
	return nil
}

func runKeyClear(cmd *cobra.Command, args []string) error {
	// Confirm deletion
	fmt.Print("\nRemove the stored access key? [y/N]: ")
	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := auth.DeleteAccessKey(); err != nil {
		return fmt.Errorf("failed to remove access key: %w", err)
	}

	fmt.Printf("\n%s Access key removed.\n\n", ui.Success("✓"))
	return nil
}

// maskKey hides the middle of a key, leaving just enough to recognize it
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
