// Package capture turns a target URL plus capture options into a raw
// screenshot artifact, either through the hosted rendering service or a
// locally driven headless Chrome.
package capture

import (
	"context"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// Capturer is the interface all capture engines implement
type Capturer interface {
	// Capture renders the target and returns the raw artifact
	Capture(ctx context.Context, target string, opts models.CaptureOptions) (*models.Artifact, error)

	// Name returns the name of the engine implementation
	Name() string
}
