// internal/tile/surface.go
package tile

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// Surface is an offscreen canvas reused sequentially across the sections
// of one split. The contract per section is Reset, then Draw, then
// EncodePNG; Reset discards whatever the previous section drew.
type Surface struct {
	dc *gg.Context
}

// Reset replaces the canvas with a blank one of the given size.
func (s *Surface) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface size %dx%d is not drawable", width, height)
	}
	s.dc = gg.NewContext(width, height)
	return nil
}

// Draw copies the block of src whose top-left corner sits at (srcX, srcY)
// onto the entire canvas. The copy is a direct pixel transfer, bypassing
// any resampling, so the encoded section matches the source region.
func (s *Surface) Draw(src image.Image, srcX, srcY int) error {
	if s.dc == nil {
		return fmt.Errorf("surface has not been reset")
	}
	dst, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		s.dc.DrawImage(src, -srcX, -srcY)
		return nil
	}
	draw.Draw(dst, dst.Bounds(), src, image.Pt(srcX, srcY), draw.Src)
	return nil
}

// EncodePNG reads the canvas back as a lossless PNG payload.
func (s *Surface) EncodePNG() ([]byte, error) {
	if s.dc == nil {
		return nil, fmt.Errorf("surface has not been reset")
	}
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode section: %w", err)
	}
	return buf.Bytes(), nil
}
