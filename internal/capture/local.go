// internal/capture/local.go
package capture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	urlutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/url"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// LocalEngine renders captures with a headless Chrome owned by this
// process. It serves png, jpeg, and pdf; the animated formats need the
// remote service. Options that only exist service-side (ad blocking,
// cookie banner removal, response caching) are ignored with a debug log.
type LocalEngine struct {
	headless   bool
	userAgent  string
	proxy      string
	chromePath string
}

// LocalOptions configures the local rendering engine
type LocalOptions struct {
	Headless   bool
	UserAgent  string
	Proxy      string
	ChromePath string
}

// NewLocalEngine creates a local engine with the given browser settings
func NewLocalEngine(o LocalOptions) *LocalEngine {
	return &LocalEngine{
		headless:   o.Headless,
		userAgent:  o.UserAgent,
		proxy:      o.Proxy,
		chromePath: o.ChromePath,
	}
}

// Name returns the name of this engine
func (l *LocalEngine) Name() string {
	return "LocalEngine"
}

// Capture renders the target in headless Chrome and returns the artifact
func (l *LocalEngine) Capture(ctx context.Context, target string, opts models.CaptureOptions) (*models.Artifact, error) {
	start := time.Now()

	target = urlutil.NormalizeTarget(target)
	if err := urlutil.ValidateURL(target); err != nil {
		return nil, NewError(KindValidation, "invalid target URL", err)
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	switch opts.Format {
	case models.FormatPNG, models.FormatJPEG, models.FormatPDF:
	default:
		return nil, NewError(KindValidation, fmt.Sprintf("format %q is only rendered by the remote engine", opts.Format), nil)
	}

	if opts.BlockAds || opts.BlockBanners || opts.Cache {
		log.Debug().
			Bool("block_ads", opts.BlockAds).
			Bool("block_cookie_banners", opts.BlockBanners).
			Bool("cache", opts.Cache).
			Msg("Service-side options ignored by the local engine")
	}

	// The remote service budgets page load time through the timeout
	// option; here the browser runs in-process, so the same budget plus
	// the delay bounds the whole render.
	timeoutSec := optionInt(opts.Timeout, 60)
	delaySec := clampedDelaySeconds(opts.Delay)
	runCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSec+delaySec)*time.Second+15*time.Second)
	defer cancel()

	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("headless", l.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("disable-client-side-phishing-detection", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-hang-monitor", true),
		chromedp.Flag("disable-prompt-on-repost", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("force-color-profile", "srgb"),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("hide-scrollbars", true),
	}
	if l.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(l.chromePath))
	}
	if l.userAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(l.userAgent))
	}
	if l.proxy != "" {
		allocOpts = append(allocOpts, chromedp.ProxyServer(l.proxy))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(runCtx, allocOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// Record the status of the main document response for diagnostics.
	// Error pages still render, so a non-2xx status is captured, not failed.
	var statusCode int64
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Type == network.ResourceTypeDocument && statusCode == 0 {
				statusCode = resp.Response.Status
			}
		}
	})

	width, height, scale := l.viewport(opts)

	tasks := []chromedp.Action{network.Enable()}

	if len(opts.Headers) > 0 {
		extra := make(network.Headers, len(opts.Headers))
		for k, v := range opts.Headers {
			extra[k] = v
		}
		tasks = append(tasks, network.SetExtraHTTPHeaders(extra))
	}

	tasks = append(tasks,
		chromedp.EmulateViewport(width, height, chromedp.EmulateScale(scale)),
		chromedp.Navigate(target),
	)

	switch opts.WaitUntil {
	case models.WaitNetworkIdle0:
		tasks = append(tasks, waitNetworkIdle(0, 500*time.Millisecond))
	case models.WaitNetworkIdle2:
		tasks = append(tasks, waitNetworkIdle(2, 500*time.Millisecond))
	}

	if delaySec > 0 {
		tasks = append(tasks, chromedp.Sleep(time.Duration(delaySec)*time.Second))
	}

	if script := BuildScrollScript(opts); script != "" {
		tasks = append(tasks, chromedp.Evaluate(script, nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}))
	}

	var buf []byte
	switch {
	case opts.Format == models.FormatPDF:
		tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}))
	case opts.FullPage:
		quality := 100
		if opts.Format == models.FormatJPEG {
			quality = 90
		}
		tasks = append(tasks, chromedp.FullScreenshot(&buf, quality))
	case opts.Format == models.FormatJPEG:
		tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
			data, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatJpeg).
				WithQuality(90).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}))
	default:
		tasks = append(tasks, chromedp.CaptureScreenshot(&buf))
	}

	log.Debug().
		Str("engine", l.Name()).
		Str("target", target).
		Int64("viewport_width", width).
		Int64("viewport_height", height).
		Float64("scale", scale).
		Msg("Rendering capture")

	if err := chromedp.Run(browserCtx, tasks...); err != nil {
		return nil, NewError(KindBrowser, "local render failed", err)
	}

	responseTime := time.Since(start).Milliseconds()

	log.Debug().
		Int64("status", statusCode).
		Int("bytes", len(buf)).
		Int64("response_time_ms", responseTime).
		Msg("Render completed")

	return &models.Artifact{
		Data:         buf,
		ContentType:  localContentType(opts.Format),
		Format:       opts.Format,
		Target:       target,
		CapturedAt:   time.Now(),
		ResponseTime: responseTime,
	}, nil
}

// viewport resolves the emulated screen from the device preset, falling
// back to the explicit width and height for the custom device
func (l *LocalEngine) viewport(opts models.CaptureOptions) (int64, int64, float64) {
	if opts.Device != "" && opts.Device != models.DeviceCustom {
		if d, ok := DeviceByID(opts.Device); ok {
			return int64(d.Width), int64(d.Height), d.Scale
		}
	}
	width := optionInt(opts.Width, 1920)
	height := optionInt(opts.Height, 1080)
	scale := float64(optionInt(opts.Scale, 1))
	if scale < 1 {
		scale = 1
	}
	return int64(width), int64(height), scale
}

// waitNetworkIdle blocks until no more than maxInflight requests have
// been active for the given window, approximating the networkidle0 and
// networkidle2 readiness events
func waitNetworkIdle(maxInflight int, window time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		var (
			mu       sync.Mutex
			inflight int
			once     sync.Once
		)
		idle := make(chan struct{})
		timer := time.AfterFunc(window, func() {
			once.Do(func() { close(idle) })
		})
		defer timer.Stop()

		chromedp.ListenTarget(ctx, func(ev interface{}) {
			mu.Lock()
			defer mu.Unlock()
			switch ev.(type) {
			case *network.EventRequestWillBeSent:
				inflight++
				if inflight > maxInflight {
					timer.Stop()
				}
			case *network.EventLoadingFinished, *network.EventLoadingFailed:
				if inflight > 0 {
					inflight--
				}
				if inflight <= maxInflight {
					timer.Reset(window)
				}
			}
		})

		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func localContentType(format models.Format) string {
	switch format {
	case models.FormatJPEG:
		return "image/jpeg"
	case models.FormatPDF:
		return "application/pdf"
	default:
		return "image/png"
	}
}

// optionInt parses a numeric option string, falling back when it is
// empty or malformed
func optionInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// clampedDelaySeconds mirrors the serializer's delay clamp for the local
// render budget
func clampedDelaySeconds(delay string) int {
	n, err := strconv.Atoi(strings.TrimSpace(delay))
	if err != nil || n <= 0 {
		return 0
	}
	if n > models.MaxDelaySeconds {
		return models.MaxDelaySeconds
	}
	return n
}
