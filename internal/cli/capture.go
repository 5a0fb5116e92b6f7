// internal/cli/capture.go
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mynameistito/screenshotgun-app-v2/internal/capture"
	"github.com/mynameistito/screenshotgun-app-v2/internal/export"
	"github.com/mynameistito/screenshotgun-app-v2/internal/tile"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
	headersutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/headers"
	urlutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/url"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

var (
	captureFormat  string
	fullPage       bool
	viewportWidth  string
	viewportHeight string
	devicePreset   string
	pixelScale     string
	blockAds       bool
	blockBanners   bool
	useCache       bool
	captureTimeout string
	captureDelay   string
	waitUntil      string
	scrollPage     bool
	scrollStrategy string
	scrollSteps    int
	scrollScript   string
	scriptFile     string
	engineName     string
	withManifest   bool
	headers        []string
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture <url>",
	Short: "Capture a screenshot, PDF or recording of a web page",
	Long: `Sends a single capture request for the given URL and saves the result
to the output directory.

Full-page PNG screenshots taller than 4096 pixels are split into numbered
sections so no image exceeds common decoder limits. Every other format is
saved as one file.

Filenames are derived from the target's root domain and the capture date,
e.g. example-22-08-2026-section-1.png.`,
	Example: `  # Capture a full-page screenshot (tall pages are tiled into sections)
  screenshotgun capture https://example.com

  # Capture a PDF of the viewport only
  screenshotgun capture https://example.com --format=pdf --full-page=false

  # Emulate a phone and hide cookie banners
  screenshotgun capture https://example.com --device=iphone_15 --block-banners

  # Pre-scroll in steps so lazy-loaded images render
  screenshotgun capture https://example.com --scroll --scroll-strategy=progressive --scroll-steps=20

  # Drive the page with a custom scroll script
  screenshotgun capture https://example.com --script-file=scroll.js

  # Use a locally installed Chrome instead of the capture service
  screenshotgun capture https://example.com --engine=local`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().StringVarP(&captureFormat, "format", "f", string(models.FormatPNG), "Output format: png, jpeg, webp, pdf, gif, or mp4")
	captureCmd.Flags().BoolVar(&fullPage, "full-page", true, "Capture the full scrollable page instead of the viewport")
	captureCmd.Flags().StringVar(&viewportWidth, "width", models.DefaultViewportWidth, "Viewport width in pixels")
	captureCmd.Flags().StringVar(&viewportHeight, "height", models.DefaultViewportHeight, "Viewport height in pixels")
	captureCmd.Flags().StringVarP(&devicePreset, "device", "d", models.DeviceCustom, "Device preset to emulate (see \"screenshotgun devices\")")
	captureCmd.Flags().StringVar(&pixelScale, "scale", models.DefaultScale, "Device scale factor: 1, 2, or 3")
	captureCmd.Flags().BoolVar(&blockAds, "block-ads", false, "Block ad network requests during capture")
	captureCmd.Flags().BoolVar(&blockBanners, "block-banners", false, "Hide cookie and consent banners")
	captureCmd.Flags().BoolVar(&useCache, "cache", false, "Allow the service to serve a cached capture")
	captureCmd.Flags().StringVar(&captureTimeout, "timeout", models.DefaultTimeout, "Capture timeout in seconds (1-300)")
	captureCmd.Flags().StringVar(&captureDelay, "delay", models.DefaultDelay, "Seconds to wait after load before capturing (capped at 30)")
	captureCmd.Flags().StringVar(&waitUntil, "wait-until", string(models.WaitLoad), "Readiness event: load, domcontentloaded, networkidle0, or networkidle2")
	captureCmd.Flags().BoolVar(&scrollPage, "scroll", false, "Scroll through the page before capturing so lazy content loads")
	captureCmd.Flags().StringVar(&scrollStrategy, "scroll-strategy", string(models.ScrollSimple), "Scroll flavor: simple, progressive, or custom")
	captureCmd.Flags().IntVar(&scrollSteps, "scroll-steps", models.DefaultScrollSteps, "Number of progressive scroll stops (5-50)")
	captureCmd.Flags().StringVar(&scrollScript, "script", "", "Custom scroll script to run in the page before capture")
	captureCmd.Flags().StringVar(&scriptFile, "script-file", "", "Read the custom scroll script from a file")
	captureCmd.Flags().StringVarP(&engineName, "engine", "e", "", "Capture engine: remote (default) or local")
	captureCmd.Flags().BoolVar(&withManifest, "manifest", false, "Write a JSON manifest describing the saved files")
	captureCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (e.g., -H \"Authorization: Bearer token\")")
}

func runCapture(cmd *cobra.Command, args []string) error {
	target := urlutil.NormalizeTarget(args[0])
	if err := urlutil.ValidateURL(target); err != nil {
		return capture.NewError(capture.KindValidation, "invalid target URL", err)
	}

	// Build capture options from flags
	opts := models.DefaultCaptureOptions()
	opts.Format = models.Format(strings.ToLower(captureFormat))
	opts.FullPage = fullPage
	opts.Width = viewportWidth
	opts.Height = viewportHeight
	opts.Device = devicePreset
	opts.Scale = pixelScale
	opts.BlockAds = blockAds
	opts.BlockBanners = blockBanners
	opts.Cache = useCache
	opts.Timeout = captureTimeout
	opts.Delay = captureDelay
	opts.WaitUntil = models.WaitCondition(strings.ToLower(waitUntil))
	opts.Scroll = scrollPage
	opts.ScrollStrategy = models.ScrollStrategy(strings.ToLower(scrollStrategy))
	opts.ScrollSteps = scrollSteps
	opts.Headers = headersutil.ParseHeaders(headers)

	// A provided script selects the custom strategy and enables scrolling
	script := scrollScript
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to read script file: %w", err)
		}
		script = string(data)
	}
	if strings.TrimSpace(script) != "" {
		opts.Script = script
		opts.Scroll = true
		opts.ScrollStrategy = models.ScrollCustom

		// The script is sent unchanged either way; the lint only warns
		// before a capture is spent on a script that cannot run
		if err := capture.LintScript(script); err != nil {
			log.Warn().Err(err).Msg("Custom scroll script failed to parse, sending it unchanged")
		}
	}

	if err := capture.ValidateOptions(opts); err != nil {
		return err
	}

	// Get app from command context
	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return fmt.Errorf("application not initialized")
	}

	eng, err := appCtx.Engine(engineName)
	if err != nil {
		return err
	}

	if err := appCtx.Session.Begin(); err != nil {
		return err
	}

	log.Debug().
		Str("target", target).
		Str("format", string(opts.Format)).
		Str("engine", eng.Name()).
		Bool("full_page", opts.FullPage).
		Msg("Starting capture")

	started := time.Now()
	artifact, err := eng.Capture(cmd.Context(), target, opts)
	if err != nil {
		appCtx.Session.Fail(err)
		return fmt.Errorf("capture failed: %w", err)
	}

	log.Debug().
		Int("bytes", len(artifact.Data)).
		Int64("response_time_ms", artifact.ResponseTime).
		Msg("Capture received")

	result, err := appCtx.Splitter.Split(artifact, opts)
	if err != nil {
		appCtx.Session.Fail(err)
		return fmt.Errorf("failed to process screenshot: %w", err)
	}

	files, err := appCtx.Exporter.Export(result, target, opts.Format)
	if err != nil {
		appCtx.Session.Fail(err)
		return fmt.Errorf("failed to save output: %w", err)
	}

	if withManifest {
		manifest, err := appCtx.Exporter.WriteManifest(artifact, result.Sections, files)
		if err != nil {
			appCtx.Session.Fail(err)
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		files = append(files, *manifest)
	}

	appCtx.Session.Succeed()

	printCaptureSummary(target, artifact, result, files, time.Since(started))
	return nil
}

// captureSummary is the machine-readable form printed with --json
type captureSummary struct {
	Target     string   `json:"target"`
	Format     string   `json:"format"`
	Tiled      bool     `json:"tiled"`
	Sections   int      `json:"sections,omitempty"`
	Files      []string `json:"files"`
	Bytes      int64    `json:"bytes"`
	DurationMS int64    `json:"duration_ms"`
}

func printCaptureSummary(target string, artifact *models.Artifact, result *tile.Result, files []export.FileResult, elapsed time.Duration) {
	if quiet {
		return
	}

	totalSize := int64(0)
	paths := make([]string, 0, len(files))
	for _, f := range files {
		totalSize += f.Size
		paths = append(paths, f.Path)
	}

	if jsonOutput {
		summary := captureSummary{
			Target:     target,
			Format:     string(artifact.Format),
			Tiled:      result.Tiled(),
			Files:      paths,
			Bytes:      totalSize,
			DurationMS: elapsed.Milliseconds(),
		}
		if result.Tiled() {
			summary.Sections = len(result.Sections)
		}
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal capture summary")
			return
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("\n%s %s\n", ui.Success("✓"), ui.ColorWhite+"Capture complete"+ui.ColorReset)

	fmt.Printf("\n%s\n", ui.Bold("Files:"))
	for i, f := range files {
		fmt.Printf("  %s%d.%s %s %s\n",
			ui.ColorDim, i+1, ui.ColorReset,
			ui.ColorWhite+f.Path+ui.ColorReset,
			ui.Dim("("+formatBytes(f.Size)+")"))
	}

	fmt.Printf("\n%s\n", ui.Bold("Summary:"))
	fmt.Printf("  %s %s\n", ui.ColorBold+"Target:"+ui.ColorReset, ui.ColorWhite+target+ui.ColorReset)
	fmt.Printf("  %s %s\n", ui.ColorBold+"Format:"+ui.ColorReset, ui.ColorWhite+string(artifact.Format)+ui.ColorReset)
	if result.Tiled() {
		fmt.Printf("  %s %s\n", ui.ColorBold+"Sections:"+ui.ColorReset, ui.ColorWhite+fmt.Sprintf("%d", len(result.Sections))+ui.ColorReset)
	}
	fmt.Printf("  %s %s\n", ui.ColorBold+"Total Size:"+ui.ColorReset, ui.ColorWhite+formatBytes(totalSize)+ui.ColorReset)
	fmt.Printf("  %s %s\n", ui.ColorBold+"Duration:"+ui.ColorReset, ui.ColorWhite+elapsed.Round(time.Millisecond).String()+ui.ColorReset)
}

// formatBytes formats byte count as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
