package interfaces

import "github.com/elitGithub/cryptocurrency-market-analysis/internal/models"

// SignalService derives a discrete trading signal from an analysis bundle.
type SignalService interface {
	// Derive maps the bundle's suggestions and RSI to a BUY/SELL/HOLD signal.
	// Pure: identical inputs always yield an identical signal.
	Derive(bundle *models.AnalysisBundle) models.Signal
}
