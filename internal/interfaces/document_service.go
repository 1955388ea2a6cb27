package interfaces

import "github.com/elitGithub/cryptocurrency-market-analysis/internal/models"

// DocumentService builds and renders the paginated document artifact.
type DocumentService interface {
	// BuildDocument assembles the fixed section sequence for one report run.
	BuildDocument(bundle *models.AnalysisBundle, signal models.Signal) models.DocumentSpec

	// Render produces the document as PDF bytes.
	Render(spec models.DocumentSpec) ([]byte, error)
}
