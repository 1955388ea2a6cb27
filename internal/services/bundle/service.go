package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/interfaces"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// Default moving-average periods when the bundle omits them.
const (
	defaultShortMAPeriod = 50
	defaultLongMAPeriod  = 200
)

// Service implements interfaces.BundleLoader
type Service struct {
	logger   arbor.ILogger
	validate *validator.Validate
}

// Compile-time assertion
var _ interfaces.BundleLoader = (*Service)(nil)

// NewService creates a new bundle loader
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load parses and validates the bundle file at path. Any schema violation,
// including a missing required numeric indicator, is fatal to the run.
func (s *Service) Load(path string) (*models.AnalysisBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle file: %w", err)
	}

	var schema BundleSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse bundle file: %w", err)
	}

	if err := s.validate.Struct(&schema); err != nil {
		return nil, fmt.Errorf("bundle validation failed: %w", err)
	}

	bundle := s.toModel(&schema)

	s.logger.Info().
		Str("symbol", bundle.Symbol).
		Int("exchanges", len(bundle.Exchanges)).
		Int("suggestions", len(bundle.Suggestions)).
		Str("path", path).
		Msg("Loaded analysis bundle")

	return bundle, nil
}

func (s *Service) toModel(schema *BundleSchema) *models.AnalysisBundle {
	exchanges := make([]models.ExchangeInfo, len(schema.Exchanges))
	for i, ex := range schema.Exchanges {
		exchanges[i] = models.ExchangeInfo{
			Name:          ex.Name,
			TotalPairs:    ex.TotalPairs,
			USDTPairs:     ex.USDTPairs,
			HasOHLCV:      ex.HasOHLCV,
			RateLimitHint: ex.RateLimitHint,
		}
	}

	suggestions := make([]models.Suggestion, len(schema.Suggestions))
	for i, text := range schema.Suggestions {
		suggestions[i] = models.Suggestion{
			Text: text,
			Tag:  models.ClassifySuggestion(text),
		}
	}

	indicators := models.LatestIndicators{
		Close:         *schema.Indicators.Close,
		RSI:           *schema.Indicators.RSI,
		ShortMA:       *schema.Indicators.ShortMA,
		LongMA:        *schema.Indicators.LongMA,
		ShortMAPeriod: schema.Indicators.ShortMAPeriod,
		LongMAPeriod:  schema.Indicators.LongMAPeriod,
	}
	if indicators.ShortMAPeriod == 0 {
		indicators.ShortMAPeriod = defaultShortMAPeriod
	}
	if indicators.LongMAPeriod == 0 {
		indicators.LongMAPeriod = defaultLongMAPeriod
	}

	return &models.AnalysisBundle{
		Symbol:      schema.Symbol,
		Exchanges:   exchanges,
		Suggestions: suggestions,
		Indicators:  indicators,
		ChartPath:   schema.ChartPath,
	}
}
