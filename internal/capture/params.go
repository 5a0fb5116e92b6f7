// internal/capture/params.go
package capture

import (
	"net/url"
	"strconv"
	"strings"

	urlutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/url"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// BuildParams serializes a capture request into the query parameters the
// capture service expects. Values matching the service-side defaults are
// omitted; the service fills them in anyway and the shorter URL keeps logs
// and quotas readable.
//
// When a device preset is selected the service derives the viewport from
// it, so viewport_width and viewport_height are suppressed. With the
// custom device the width is always sent and the height only when given.
func BuildParams(target, accessKey string, opts models.CaptureOptions) url.Values {
	values := url.Values{}

	values.Set("access_key", accessKey)
	values.Set("url", urlutil.NormalizeTarget(target))
	values.Set("format", string(opts.Format))
	values.Set("full_page", strconv.FormatBool(opts.FullPage))

	if opts.Device != "" && opts.Device != models.DeviceCustom {
		values.Set("viewport_device", opts.Device)
	} else {
		values.Set("viewport_width", opts.Width)
		if opts.Height != "" {
			values.Set("viewport_height", opts.Height)
		}
	}

	if opts.Scale != "" && opts.Scale != models.DefaultScale {
		values.Set("device_scale_factor", opts.Scale)
	}

	if opts.BlockAds {
		values.Set("block_ads", "true")
	}
	if opts.BlockBanners {
		values.Set("block_cookie_banners", "true")
	}

	// Cache is the one boolean sent in both states: the service defaults
	// to cached captures for some plans, so the choice must be explicit.
	values.Set("cache", strconv.FormatBool(opts.Cache))

	if opts.Timeout != "" && opts.Timeout != models.DefaultTimeout {
		values.Set("timeout", opts.Timeout)
	}

	if delay := clampDelay(opts.Delay); delay != models.DefaultDelay {
		values.Set("delay", delay)
	}

	if opts.WaitUntil != "" && opts.WaitUntil != models.WaitLoad {
		values.Set("wait_until", string(opts.WaitUntil))
	}

	if script := BuildScrollScript(opts); script != "" {
		values.Set("scripts", script)
	}

	return values
}

// RequestURL joins the endpoint with the encoded parameter set
func RequestURL(endpoint, target, accessKey string, opts models.CaptureOptions) string {
	return endpoint + "?" + BuildParams(target, accessKey, opts).Encode()
}

// clampDelay caps the delay at the service maximum of 30 seconds.
// Non-numeric input is passed through untouched for the service to
// reject with its own message.
func clampDelay(delay string) string {
	delay = strings.TrimSpace(delay)
	if delay == "" {
		return models.DefaultDelay
	}
	n, err := strconv.Atoi(delay)
	if err != nil {
		return delay
	}
	if n <= 0 {
		return models.DefaultDelay
	}
	if n > models.MaxDelaySeconds {
		return strconv.Itoa(models.MaxDelaySeconds)
	}
	return strconv.Itoa(n)
}
