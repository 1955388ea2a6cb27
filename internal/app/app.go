package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/common"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/interfaces"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/services/bundle"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/services/deck"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/services/report"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/services/signal"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger
	Theme  models.Theme

	BundleLoader    interfaces.BundleLoader
	SignalService   interfaces.SignalService
	DeckService     interfaces.DeckService
	DocumentService interfaces.DocumentService
}

// New wires all services. Both renderers receive the same theme instance so
// recommendation colors cannot diverge between the deck and the document.
func New(config *common.Config, logger arbor.ILogger) *App {
	theme := models.DefaultTheme()

	return &App{
		Config:          config,
		Logger:          logger,
		Theme:           theme,
		BundleLoader:    bundle.NewService(logger),
		SignalService:   signal.NewService(logger),
		DeckService:     deck.NewService(logger, theme, config.Report.MaxDeckBullets),
		DocumentService: report.NewService(logger, theme, config.Report.ChartWidthMM),
	}
}

// GenerateReports runs one full report pass: load the bundle, derive the
// signal once, render the deck and the document.
func (a *App) GenerateReports(bundlePath, deckPath, documentPath string) error {
	analysisBundle, err := a.BundleLoader.Load(bundlePath)
	if err != nil {
		return fmt.Errorf("failed to load analysis bundle: %w", err)
	}

	sig := a.SignalService.Derive(analysisBundle)
	a.Logger.Info().
		Str("symbol", analysisBundle.Symbol).
		Str("recommendation", string(sig.Recommendation)).
		Msg("Derived trading signal")

	slides := a.DeckService.BuildDeck(analysisBundle, sig)
	if err := a.DeckService.Render(slides, deckPath); err != nil {
		return fmt.Errorf("failed to render slide deck: %w", err)
	}

	docSpec := a.DocumentService.BuildDocument(analysisBundle, sig)
	docBytes, err := a.DocumentService.Render(docSpec)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(documentPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(documentPath, docBytes, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	for _, path := range []string{deckPath, documentPath} {
		if err := api.ValidateFile(path, nil); err != nil {
			return fmt.Errorf("output validation failed for %s: %w", path, err)
		}
	}

	a.Logger.Info().
		Str("deck", deckPath).
		Str("document", documentPath).
		Msg("Report generation complete")

	return nil
}
