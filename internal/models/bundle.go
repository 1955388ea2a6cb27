package models

import (
	"sort"
	"strings"
)

// SuggestionTag classifies a suggestion at creation time so renderers never
// have to re-parse the suggestion text for keywords.
type SuggestionTag string

const (
	TagBullish     SuggestionTag = "bullish"
	TagBearish     SuggestionTag = "bearish"
	TagWarning     SuggestionTag = "warning"
	TagOpportunity SuggestionTag = "opportunity"
	TagTrend       SuggestionTag = "trend"
	TagNeutral     SuggestionTag = "neutral"
)

// Suggestion is one textual analysis observation with its classification.
type Suggestion struct {
	Text string        `json:"text"`
	Tag  SuggestionTag `json:"tag"`
}

// ClassifySuggestion derives a tag from the keyword markers embedded in raw
// suggestion text. Used when loading bundles whose suggestions carry no
// explicit tag. Matching is case-sensitive to mirror the marker conventions
// used by the upstream pipeline.
func ClassifySuggestion(text string) SuggestionTag {
	switch {
	case strings.Contains(text, "BULLISH"):
		return TagBullish
	case strings.Contains(text, "BEARISH"):
		return TagBearish
	case strings.Contains(text, "WARNING"):
		return TagWarning
	case strings.Contains(text, "OPPORTUNITY"):
		return TagOpportunity
	case strings.Contains(text, "TREND"):
		return TagTrend
	default:
		return TagNeutral
	}
}

// StripLabel removes a leading "LABEL: " prefix (e.g. "BULLISH: ") from
// suggestion text for display. Text without a prefix is returned unchanged.
func StripLabel(text string) string {
	if idx := strings.Index(text, ": "); idx > 0 {
		label := text[:idx]
		if label == strings.ToUpper(label) && !strings.ContainsAny(label, " \t") {
			return text[idx+2:]
		}
	}
	return text
}

// ExchangeInfo is read-only reference data for one exchange.
type ExchangeInfo struct {
	Name          string `json:"name"`
	TotalPairs    int    `json:"total_pairs"`
	USDTPairs     int    `json:"usdt_pairs"`
	HasOHLCV      bool   `json:"has_ohlcv"`
	RateLimitHint string `json:"rate_limit_hint"`
}

// SortExchangesByUSDTPairs returns a copy of exchanges ordered by descending
// USDT-quoted pair count. Ties keep their input order.
func SortExchangesByUSDTPairs(exchanges []ExchangeInfo) []ExchangeInfo {
	sorted := make([]ExchangeInfo, len(exchanges))
	copy(sorted, exchanges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].USDTPairs > sorted[j].USDTPairs
	})
	return sorted
}

// LatestIndicators is the most recent technical-indicator snapshot, computed
// upstream.
type LatestIndicators struct {
	Close         float64 `json:"close"`
	RSI           float64 `json:"rsi"`
	ShortMA       float64 `json:"short_ma"`
	LongMA        float64 `json:"long_ma"`
	ShortMAPeriod int     `json:"short_ma_period"`
	LongMAPeriod  int     `json:"long_ma_period"`
}

// Uptrend reports whether the short moving average sits strictly above the
// long moving average.
func (l LatestIndicators) Uptrend() bool {
	return l.ShortMA > l.LongMA
}

// AnalysisBundle is the complete input for one report-generation run. It is
// treated as immutable once loaded.
type AnalysisBundle struct {
	Symbol      string           `json:"symbol"`
	Exchanges   []ExchangeInfo   `json:"exchanges"`
	Suggestions []Suggestion     `json:"suggestions"`
	Indicators  LatestIndicators `json:"indicators"`
	ChartPath   string           `json:"chart_path,omitempty"`
}

// BestExchange returns the exchange with the most USDT pairs, or false when
// the bundle carries no exchanges.
func (b *AnalysisBundle) BestExchange() (ExchangeInfo, bool) {
	if len(b.Exchanges) == 0 {
		return ExchangeInfo{}, false
	}
	best := b.Exchanges[0]
	for _, ex := range b.Exchanges[1:] {
		if ex.USDTPairs > best.USDTPairs {
			best = ex
		}
	}
	return best, true
}

// SuggestionTexts returns the raw text of every suggestion, preserving order.
func (b *AnalysisBundle) SuggestionTexts() []string {
	texts := make([]string, len(b.Suggestions))
	for i, s := range b.Suggestions {
		texts[i] = s.Text
	}
	return texts
}
