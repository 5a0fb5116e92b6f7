package capture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// ValidateOptions rejects option combinations the capture service would
// refuse, so no capture attempt is spent on them
func ValidateOptions(opts models.CaptureOptions) error {
	switch opts.Format {
	case models.FormatPNG, models.FormatJPEG, models.FormatWebP, models.FormatPDF, models.FormatGIF, models.FormatMP4:
	default:
		return NewError(KindValidation, fmt.Sprintf("invalid format %q (must be png, jpeg, webp, pdf, gif, or mp4)", opts.Format), nil)
	}

	switch opts.WaitUntil {
	case "", models.WaitLoad, models.WaitDOMContentLoaded, models.WaitNetworkIdle0, models.WaitNetworkIdle2:
	default:
		return NewError(KindValidation, fmt.Sprintf("invalid wait condition %q (must be load, domcontentloaded, networkidle0, or networkidle2)", opts.WaitUntil), nil)
	}

	switch opts.Scale {
	case "", "1", "2", "3":
	default:
		return NewError(KindValidation, fmt.Sprintf("invalid scale factor %q (must be 1, 2, or 3)", opts.Scale), nil)
	}

	if !IsKnownDevice(opts.Device) {
		return NewError(KindValidation, fmt.Sprintf("unknown device preset %q (list presets with the devices command)", opts.Device), nil)
	}

	if opts.Device == "" || opts.Device == models.DeviceCustom {
		if err := validateViewportValue("viewport width", opts.Width, true); err != nil {
			return err
		}
		if err := validateViewportValue("viewport height", opts.Height, false); err != nil {
			return err
		}
	}

	if opts.Timeout != "" {
		n, err := strconv.Atoi(strings.TrimSpace(opts.Timeout))
		if err != nil {
			return NewError(KindValidation, fmt.Sprintf("timeout %q is not a number", opts.Timeout), nil)
		}
		if n < models.MinTimeoutSeconds || n > models.MaxTimeoutSeconds {
			return NewError(KindValidation, fmt.Sprintf("timeout must be between %d and %d seconds, got %d", models.MinTimeoutSeconds, models.MaxTimeoutSeconds, n), nil)
		}
	}

	if opts.Delay != "" {
		n, err := strconv.Atoi(strings.TrimSpace(opts.Delay))
		if err != nil {
			return NewError(KindValidation, fmt.Sprintf("delay %q is not a number", opts.Delay), nil)
		}
		if n < 0 {
			return NewError(KindValidation, "delay cannot be negative", nil)
		}
		// Values above the 30 second service cap are clamped at
		// serialization rather than rejected here.
	}

	if opts.Scroll && opts.ScrollStrategy == models.ScrollProgressive {
		if opts.ScrollSteps < models.MinScrollSteps || opts.ScrollSteps > models.MaxScrollSteps {
			return NewError(KindValidation, fmt.Sprintf("scroll steps must be between %d and %d, got %d", models.MinScrollSteps, models.MaxScrollSteps, opts.ScrollSteps), nil)
		}
	}

	return nil
}

func validateViewportValue(name, value string, required bool) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return NewError(KindValidation, name+" is required with the custom device", nil)
		}
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return NewError(KindValidation, fmt.Sprintf("%s %q must be a positive integer", name, value), nil)
	}
	return nil
}
