// internal/tile/tile.go
package tile

import (
	"bytes"
	"image/png"

	"github.com/rs/zerolog/log"

	"github.com/mynameistito/screenshotgun-app-v2/internal/capture"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// MaxSectionHeight is the tallest slice produced when tiling a full-page
// screenshot. Design tools cap the height of importable images around
// this value, so taller captures are cut into stackable bands.
const MaxSectionHeight = 4096

// Result is the outcome of a split. Exactly one arm is populated: an
// ordered list of sections cut from a full-page PNG, or the untouched
// artifact for everything that exports as one file.
type Result struct {
	Sections []models.Section
	Single   *models.Artifact
}

// Tiled reports whether the result carries sections.
func (r *Result) Tiled() bool {
	return r.Single == nil
}

// Splitter cuts full-page PNG captures into sections of at most
// MaxSectionHeight pixels. The offscreen surface is reused across
// sections, so Split is not safe for concurrent use.
type Splitter struct {
	surface Surface
}

// NewSplitter creates a Splitter with an unallocated surface.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split partitions a full-page PNG artifact into sections ordered top to
// bottom. Every section except possibly the last is exactly
// MaxSectionHeight tall, and restacking them in index order reproduces
// the source image pixel for pixel. Artifacts in any other format, or
// viewport-only captures, pass through untouched as the Single arm.
func (s *Splitter) Split(artifact *models.Artifact, opts models.CaptureOptions) (*Result, error) {
	if artifact == nil {
		return nil, capture.NewError(capture.KindProcessing, "no artifact to split", nil)
	}
	if artifact.Format != models.FormatPNG || !opts.FullPage {
		return &Result{Single: artifact}, nil
	}

	img, err := png.Decode(bytes.NewReader(artifact.Data))
	if err != nil {
		return nil, capture.NewError(capture.KindProcessing, "failed to decode screenshot", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	count := (height + MaxSectionHeight - 1) / MaxSectionHeight

	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("sections", count).
		Msg("Splitting screenshot")

	sections := make([]models.Section, 0, count)
	for i := 0; i < count; i++ {
		top := i * MaxSectionHeight
		sectionHeight := height - top
		if sectionHeight > MaxSectionHeight {
			sectionHeight = MaxSectionHeight
		}

		if err := s.surface.Reset(width, sectionHeight); err != nil {
			return nil, capture.NewError(capture.KindProcessing, "failed to prepare drawing surface", err)
		}
		if err := s.surface.Draw(img, bounds.Min.X, bounds.Min.Y+top); err != nil {
			return nil, capture.NewError(capture.KindProcessing, "failed to draw section", err)
		}
		data, err := s.surface.EncodePNG()
		if err != nil {
			return nil, capture.NewError(capture.KindProcessing, "failed to encode section", err)
		}

		sections = append(sections, models.Section{
			Data:   data,
			Index:  i + 1,
			Width:  width,
			Height: sectionHeight,
		})
	}

	return &Result{Sections: sections}, nil
}
