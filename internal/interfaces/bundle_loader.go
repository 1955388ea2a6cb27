package interfaces

import "github.com/elitGithub/cryptocurrency-market-analysis/internal/models"

// BundleLoader reads and validates an analysis bundle from a file.
type BundleLoader interface {
	// Load parses the bundle at path. A bundle missing a required numeric
	// field is a fatal error; the caller aborts the render.
	Load(path string) (*models.AnalysisBundle, error)
}
