package interfaces

import "github.com/elitGithub/cryptocurrency-market-analysis/internal/models"

// DeckService builds and renders the slide-deck artifact.
type DeckService interface {
	// BuildDeck assembles the fixed slide sequence for one report run.
	// Slide order is a contract; downstream steps rely on stable indices.
	BuildDeck(bundle *models.AnalysisBundle, signal models.Signal) []models.SlideSpec

	// Render writes the slides as a single 16:9 deck file at outputPath.
	// Intermediate per-slide files are removed best-effort.
	Render(slides []models.SlideSpec, outputPath string) error
}
