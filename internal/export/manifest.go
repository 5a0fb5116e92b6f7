// internal/export/manifest.go
package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// Manifest is a JSON sidecar describing one export, for tooling that
// consumes the output directory.
type Manifest struct {
	Capture   *models.Artifact `json:"capture"`
	WrittenAt time.Time        `json:"written_at"`
	Files     []ManifestFile   `json:"files"`
}

// ManifestFile is one written file inside a Manifest. Section geometry
// is present only for tiled exports.
type ManifestFile struct {
	Name   string `json:"name"`
	Bytes  int64  `json:"bytes"`
	Index  int    `json:"index,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// WriteManifest saves the sidecar for an export. The sections slice may
// be empty for single-file exports; files and sections are matched by
// position.
func (e *Exporter) WriteManifest(artifact *models.Artifact, sections []models.Section, files []FileResult) (*FileResult, error) {
	now := e.now()

	manifest := Manifest{
		Capture:   artifact,
		WrittenAt: now,
	}
	for i, f := range files {
		mf := ManifestFile{
			Name:  filepath.Base(f.Path),
			Bytes: f.Size,
		}
		if i < len(sections) {
			mf.Index = sections[i].Index
			mf.Width = sections[i].Width
			mf.Height = sections[i].Height
		}
		manifest.Files = append(manifest.Files, mf)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	return e.writeFile(ManifestFilename(artifact.Target, now), data)
}
