package models

import "time"

// Format identifies the output format requested for a capture
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
	FormatPDF  Format = "pdf"
	FormatGIF  Format = "gif"
	FormatMP4  Format = "mp4"
)

// Extension returns the file extension for this format (jpeg saves as jpg)
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// WaitCondition defines when the page is considered ready for capture
type WaitCondition string

const (
	WaitLoad             WaitCondition = "load"
	WaitDOMContentLoaded WaitCondition = "domcontentloaded"
	WaitNetworkIdle0     WaitCondition = "networkidle0"
	WaitNetworkIdle2     WaitCondition = "networkidle2"
)

// ScrollStrategy selects how the page is pre-scrolled before capture
type ScrollStrategy string

const (
	ScrollSimple      ScrollStrategy = "simple"
	ScrollProgressive ScrollStrategy = "progressive"
	ScrollCustom      ScrollStrategy = "custom"
)

// Defaults shared by the CLI flags and the request serializer. Values equal
// to these are omitted from the outgoing request where the service applies
// the same default on its side.
const (
	DefaultViewportWidth  = "1920"
	DefaultViewportHeight = "1080"
	DefaultScale          = "1"
	DefaultTimeout        = "60"
	DefaultDelay          = "0"
	MaxDelaySeconds       = 30
	MinTimeoutSeconds     = 1
	MaxTimeoutSeconds     = 300
	DefaultScrollSteps    = 10
	MinScrollSteps        = 5
	MaxScrollSteps        = 50

	// DeviceCustom means no device preset: the explicit viewport applies.
	DeviceCustom = "custom"
)

// CaptureOptions contains every user-facing knob of a capture request.
// Viewport and timing values are kept as strings: they arrive as free text
// and are forwarded as query parameters, so the string form is canonical.
type CaptureOptions struct {
	Format         Format
	FullPage       bool
	Width          string
	Height         string
	Device         string
	Scale          string
	BlockAds       bool
	BlockBanners   bool
	Cache          bool
	Timeout        string
	Delay          string
	WaitUntil      WaitCondition
	Scroll         bool
	ScrollStrategy ScrollStrategy
	ScrollSteps    int
	Script         string
	Headers        map[string]string
}

// DefaultCaptureOptions returns options matching the service-side defaults
func DefaultCaptureOptions() CaptureOptions {
	return CaptureOptions{
		Format:         FormatPNG,
		FullPage:       true,
		Width:          DefaultViewportWidth,
		Height:         DefaultViewportHeight,
		Device:         DeviceCustom,
		Scale:          DefaultScale,
		Timeout:        DefaultTimeout,
		Delay:          DefaultDelay,
		WaitUntil:      WaitLoad,
		ScrollStrategy: ScrollSimple,
		ScrollSteps:    DefaultScrollSteps,
	}
}

// Artifact is the raw payload produced by one capture attempt
type Artifact struct {
	Data         []byte    `json:"-"`
	ContentType  string    `json:"content_type,omitempty"`
	Format       Format    `json:"format"`
	Target       string    `json:"target"`
	CapturedAt   time.Time `json:"captured_at"`
	ResponseTime int64     `json:"response_time_ms"`
}

// Section is one horizontal slice of a tiled full-page screenshot.
// Index is 1-based and orders the slices top to bottom.
type Section struct {
	Data   []byte `json:"-"`
	Index  int    `json:"index"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
