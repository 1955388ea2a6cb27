package models

// Recommendation is a discrete trading action derived from an analysis bundle.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "BUY"
	RecommendationSell Recommendation = "SELL"
	RecommendationHold Recommendation = "HOLD"
)

// ColorToken names a palette entry; both renderers resolve tokens through the
// same Theme so recommendation colors cannot drift between outputs.
type ColorToken string

const (
	ColorGreen ColorToken = "green"
	ColorRed   ColorToken = "red"
	ColorAmber ColorToken = "amber"
)

// Signal is the derived trading signal for one report run. It is recomputed
// from the bundle on every render and never persisted.
type Signal struct {
	Recommendation Recommendation `json:"recommendation"`
	Color          ColorToken     `json:"color"`
	Reasoning      string         `json:"reasoning"`
}

// ColorFor returns the palette token for a recommendation.
func ColorFor(rec Recommendation) ColorToken {
	switch rec {
	case RecommendationBuy:
		return ColorGreen
	case RecommendationSell:
		return ColorRed
	default:
		return ColorAmber
	}
}
