// internal/export/export.go
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/mynameistito/screenshotgun-app-v2/internal/tile"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// FileResult records one file written to disk
type FileResult struct {
	Path string
	Size int64
}

// Exporter writes capture payloads into an output directory under
// filenames derived from the target site and the capture date.
type Exporter struct {
	outputDir string
	now       func() time.Time
}

// NewExporter creates an Exporter rooted at outputDir. The directory is
// created lazily on the first write.
func NewExporter(outputDir string) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		now:       time.Now,
	}
}

func (e *Exporter) writeFile(name string, data []byte) (*FileResult, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return &FileResult{Path: path, Size: int64(len(data))}, nil
}

// WriteSection saves one tile under its derived name.
func (e *Exporter) WriteSection(section models.Section, target string, format models.Format) (*FileResult, error) {
	result, err := e.writeFile(SectionFilename(target, format, section.Index, e.now()), section.Data)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("file", result.Path).
		Int64("bytes", result.Size).
		Msg("Section written")

	return result, nil
}

// WriteArtifact saves a single-file capture under its derived name.
func (e *Exporter) WriteArtifact(artifact *models.Artifact) (*FileResult, error) {
	result, err := e.writeFile(ArtifactFilename(artifact.Target, artifact.Format, e.now()), artifact.Data)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("file", result.Path).
		Int64("bytes", result.Size).
		Msg("Artifact written")

	return result, nil
}

// WriteAll saves every section in index order. An empty section list is
// a no-op: nothing is written, no directory is created, and no error is
// returned.
func (e *Exporter) WriteAll(sections []models.Section, target string, format models.Format) ([]FileResult, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(sections),
		progressbar.OptionSetDescription("Saving sections"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]FileResult, 0, len(sections))
	for _, section := range sections {
		result, err := e.WriteSection(section, target, format)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
		bar.Add(1)
	}
	bar.Finish()

	log.Debug().
		Int("sections", len(results)).
		Msg("All sections written")

	return results, nil
}

// Export writes a split result to disk: every section in index order for
// a tiled capture, or the single artifact for everything else.
func (e *Exporter) Export(result *tile.Result, target string, format models.Format) ([]FileResult, error) {
	if result.Tiled() {
		return e.WriteAll(result.Sections, target, format)
	}

	single, err := e.WriteArtifact(result.Single)
	if err != nil {
		return nil, err
	}
	return []FileResult{*single}, nil
}
