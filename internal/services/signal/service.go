package signal

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/interfaces"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// Markers counted in suggestion text. Matching is case-sensitive; the
// upstream pipeline emits the uppercase forms deliberately.
var (
	bullishMarkers = []string{"BULLISH", "Golden Cross", "oversold"}
	bearishMarkers = []string{"BEARISH", "Death Cross", "overbought"}
)

const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// Service implements interfaces.SignalService
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.SignalService = (*Service)(nil)

// NewService creates a new signal service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// Derive maps the bundle's suggestions and RSI to a recommendation. The
// decision order is fixed: an oversold RSI or a bullish majority wins first,
// then an overbought RSI or a bearish majority, otherwise HOLD. A tie in
// marker counts with RSI inside (30, 70) deliberately falls through to HOLD.
// RSI exactly 30 or 70 is inside the neutral range.
func (s *Service) Derive(bundle *models.AnalysisBundle) models.Signal {
	rsi := bundle.Indicators.RSI
	bullish, bearish := countMarkers(bundle.SuggestionTexts())

	var rec models.Recommendation
	var reasoning string

	switch {
	case rsi < rsiOversold || bullish > bearish:
		rec = models.RecommendationBuy
		if rsi < rsiOversold {
			reasoning = fmt.Sprintf("RSI at %.2f indicates oversold conditions, suggesting a buying opportunity.", rsi)
		} else {
			reasoning = fmt.Sprintf("Bullish signals outweigh bearish signals (%d vs %d) with RSI at %.2f.", bullish, bearish, rsi)
		}
	case rsi > rsiOverbought || bearish > bullish:
		rec = models.RecommendationSell
		if rsi > rsiOverbought {
			reasoning = fmt.Sprintf("RSI at %.2f indicates overbought conditions, suggesting taking profits.", rsi)
		} else {
			reasoning = fmt.Sprintf("Bearish signals outweigh bullish signals (%d vs %d) with RSI at %.2f.", bearish, bullish, rsi)
		}
	default:
		rec = models.RecommendationHold
		reasoning = fmt.Sprintf("Mixed signals with RSI at %.2f in neutral territory. Waiting for clearer direction.", rsi)
	}

	s.logger.Debug().
		Str("symbol", bundle.Symbol).
		Str("recommendation", string(rec)).
		Int("bullish", bullish).
		Int("bearish", bearish).
		Float64("rsi", rsi).
		Msg("Derived trading signal")

	return models.Signal{
		Recommendation: rec,
		Color:          models.ColorFor(rec),
		Reasoning:      reasoning,
	}
}

func countMarkers(suggestions []string) (bullish, bearish int) {
	for _, text := range suggestions {
		for _, m := range bullishMarkers {
			bullish += strings.Count(text, m)
		}
		for _, m := range bearishMarkers {
			bearish += strings.Count(text, m)
		}
	}
	return bullish, bearish
}
