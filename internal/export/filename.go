// internal/export/filename.go
package export

import (
	"fmt"
	"time"

	urlutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/url"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// DateLayout renders the capture date as DD-MM-YYYY inside filenames.
const DateLayout = "02-01-2006"

// SectionFilename names one tile of a split capture:
// {site}-{DD-MM-YYYY}-section-{index}.{ext}
func SectionFilename(target string, format models.Format, index int, date time.Time) string {
	return fmt.Sprintf("%s-%s-section-%d.%s",
		urlutil.RootDomain(target), date.Format(DateLayout), index, format.Extension())
}

// ArtifactFilename names a capture that exports as one file:
// {site}-{DD-MM-YYYY}.{ext}
func ArtifactFilename(target string, format models.Format, date time.Time) string {
	return fmt.Sprintf("%s-%s.%s",
		urlutil.RootDomain(target), date.Format(DateLayout), format.Extension())
}

// ManifestFilename names the JSON sidecar describing one export:
// {site}-{DD-MM-YYYY}-manifest.json
func ManifestFilename(target string, date time.Time) string {
	return fmt.Sprintf("%s-%s-manifest.json",
		urlutil.RootDomain(target), date.Format(DateLayout))
}
