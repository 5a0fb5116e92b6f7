package tile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mynameistito/screenshotgun-app-v2/internal/capture"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// pixelAt produces a deterministic opaque color per coordinate. The prime
// moduli keep rows and columns from repeating in step with the section
// height, so a misplaced copy shows up as a mismatch.
func pixelAt(x, y int) color.RGBA {
	return color.RGBA{
		R: uint8(x % 251),
		G: uint8(y % 241),
		B: uint8((x*3 + y*7) % 253),
		A: 255,
	}
}

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pixelAt(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func pngArtifact(t *testing.T, width, height int) *models.Artifact {
	t.Helper()
	return &models.Artifact{
		Data:        makePNG(t, width, height),
		ContentType: "image/png",
		Format:      models.FormatPNG,
	}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode section: %v", err)
	}
	return img
}

func TestSplit_SectionCounts(t *testing.T) {
	cases := []struct {
		height int
		want   int
	}{
		{100, 1},
		{4095, 1},
		{4096, 1},
		{4097, 2},
		{8192, 2},
		{9000, 3},
	}

	splitter := NewSplitter()
	opts := models.DefaultCaptureOptions()

	for _, tc := range cases {
		t.Run(fmt.Sprintf("height_%d", tc.height), func(t *testing.T) {
			result, err := splitter.Split(pngArtifact(t, 32, tc.height), opts)
			if err != nil {
				t.Fatalf("split failed: %v", err)
			}
			if !result.Tiled() {
				t.Fatal("full page png must produce sections")
			}
			if len(result.Sections) != tc.want {
				t.Fatalf("got %d sections, want %d", len(result.Sections), tc.want)
			}

			covered := 0
			for i, section := range result.Sections {
				if section.Index != i+1 {
					t.Errorf("section %d has index %d", i, section.Index)
				}
				if section.Width != 32 {
					t.Errorf("section %d has width %d, want 32", i, section.Width)
				}
				if i < len(result.Sections)-1 && section.Height != MaxSectionHeight {
					t.Errorf("section %d has height %d, want %d", i, section.Height, MaxSectionHeight)
				}
				covered += section.Height
			}
			if covered != tc.height {
				t.Errorf("sections cover %d rows, want %d", covered, tc.height)
			}
		})
	}
}

func TestSplit_TallPageHeights(t *testing.T) {
	result, err := NewSplitter().Split(pngArtifact(t, 40, 9000), models.DefaultCaptureOptions())
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	wantHeights := []int{4096, 4096, 808}
	if len(result.Sections) != len(wantHeights) {
		t.Fatalf("got %d sections, want %d", len(result.Sections), len(wantHeights))
	}
	for i, want := range wantHeights {
		section := result.Sections[i]
		if section.Index != i+1 {
			t.Errorf("section %d has index %d", i, section.Index)
		}
		if section.Height != want {
			t.Errorf("section %d has height %d, want %d", i, section.Height, want)
		}
		img := decodePNG(t, section.Data)
		if img.Bounds().Dx() != 40 || img.Bounds().Dy() != want {
			t.Errorf("section %d decodes to %dx%d, want 40x%d",
				i, img.Bounds().Dx(), img.Bounds().Dy(), want)
		}
	}
}

func TestSplit_RestackReproducesSource(t *testing.T) {
	const width, height = 64, 9000

	result, err := NewSplitter().Split(pngArtifact(t, width, height), models.DefaultCaptureOptions())
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	y := 0
	for _, section := range result.Sections {
		img := decodePNG(t, section.Data)
		min := img.Bounds().Min
		for sy := 0; sy < section.Height; sy++ {
			for x := 0; x < width; x++ {
				want := pixelAt(x, y+sy)
				r, g, b, a := img.At(min.X+x, min.Y+sy).RGBA()
				if uint8(r>>8) != want.R || uint8(g>>8) != want.G ||
					uint8(b>>8) != want.B || uint8(a>>8) != want.A {
					t.Fatalf("pixel (%d, %d) changed during tiling", x, y+sy)
				}
			}
		}
		y += section.Height
	}
	if y != height {
		t.Fatalf("sections cover %d rows, want %d", y, height)
	}
}

func TestSplit_SingleArtifactPassthrough(t *testing.T) {
	splitter := NewSplitter()

	jpegOpts := models.DefaultCaptureOptions()
	jpegOpts.Format = models.FormatJPEG
	jpegArtifact := &models.Artifact{Data: []byte("jpeg payload"), Format: models.FormatJPEG}

	result, err := splitter.Split(jpegArtifact, jpegOpts)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.Tiled() {
		t.Error("jpeg capture must not be tiled")
	}
	if result.Single != jpegArtifact {
		t.Error("passthrough must hand back the original artifact")
	}

	viewportOpts := models.DefaultCaptureOptions()
	viewportOpts.FullPage = false
	viewportArtifact := &models.Artifact{Data: []byte("png payload"), Format: models.FormatPNG}

	result, err = splitter.Split(viewportArtifact, viewportOpts)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if result.Tiled() {
		t.Error("viewport capture must not be tiled")
	}
	if result.Single != viewportArtifact {
		t.Error("passthrough must hand back the original artifact")
	}
}

func TestSplit_CorruptPayload(t *testing.T) {
	artifact := &models.Artifact{Data: []byte("not a png"), Format: models.FormatPNG}

	result, err := NewSplitter().Split(artifact, models.DefaultCaptureOptions())
	if err == nil {
		t.Fatal("expected an error for undecodable bytes")
	}
	if result != nil {
		t.Error("no partial section list may be surfaced on failure")
	}
	var ce *capture.Error
	if !errors.As(err, &ce) || ce.Kind != capture.KindProcessing {
		t.Fatalf("expected a processing error, got %v", err)
	}
}
