// -----------------------------------------------------------------------
// BundleSchema - File schema for analysis bundle input
// Numeric indicator fields are pointers so a missing field is detectable
// and rejected rather than silently read as zero.
// -----------------------------------------------------------------------

package bundle

// BundleSchema is the on-disk JSON shape of an analysis bundle.
type BundleSchema struct {
	Symbol      string           `json:"symbol" validate:"required"`
	Exchanges   []ExchangeSchema `json:"exchanges" validate:"dive"`
	Suggestions []string         `json:"suggestions"`
	Indicators  IndicatorSchema  `json:"indicators" validate:"required"`
	ChartPath   string           `json:"chart_path,omitempty"`
}

// ExchangeSchema is one exchange row in the bundle file.
type ExchangeSchema struct {
	Name          string `json:"name" validate:"required"`
	TotalPairs    int    `json:"total_pairs" validate:"gte=0"`
	USDTPairs     int    `json:"usdt_pairs" validate:"gte=0"`
	HasOHLCV      bool   `json:"has_ohlcv"`
	RateLimitHint string `json:"rate_limit_hint,omitempty"`
}

// IndicatorSchema carries the latest indicator snapshot. Every numeric field
// is required; a bundle missing one aborts the run.
type IndicatorSchema struct {
	Close         *float64 `json:"close" validate:"required"`
	RSI           *float64 `json:"rsi" validate:"required,gte=0,lte=100"`
	ShortMA       *float64 `json:"short_ma" validate:"required"`
	LongMA        *float64 `json:"long_ma" validate:"required"`
	ShortMAPeriod int      `json:"short_ma_period,omitempty"`
	LongMAPeriod  int      `json:"long_ma_period,omitempty"`
}
