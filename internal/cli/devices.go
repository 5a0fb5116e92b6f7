// internal/cli/devices.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mynameistito/screenshotgun-app-v2/internal/capture"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the device presets available for capture",
	Long: `Prints the viewport presets the capture service can emulate.

Pass a preset ID to capture with --device; the service derives the
viewport and scale factor from it.`,
	Example: `  # List all presets
  $ screenshotgun devices

  # Capture with a preset
  $ screenshotgun capture https://example.com --device=pixel_8`,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	devices := capture.Devices()

	maxID := len("ID")
	maxLabel := len("DEVICE")
	for _, d := range devices {
		if len(d.ID) > maxID {
			maxID = len(d.ID)
		}
		if len(d.Label) > maxLabel {
			maxLabel = len(d.Label)
		}
	}

	palette := ui.Active()

	fmt.Printf("\n%s%s%s\n\n", palette.Heading, "Device Presets", ui.ColorReset)
	fmt.Printf("  %s%-*s  %-*s  %9s  %s%s\n",
		ui.ColorDim, maxID, "ID", maxLabel, "DEVICE", "VIEWPORT", "SCALE", ui.ColorReset)

	for _, d := range devices {
		viewport := fmt.Sprintf("%dx%d", d.Width, d.Height)
		fmt.Printf("  %s%-*s%s  %-*s  %9s  %gx\n",
			palette.Accent, maxID, d.ID, ui.ColorReset,
			maxLabel, d.Label,
			viewport, d.Scale)
	}

	fmt.Printf("\n%s\n\n", ui.Dim("Use an ID with: screenshotgun capture <url> --device=<id>"))
	return nil
}
