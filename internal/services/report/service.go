package report

import (
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/interfaces"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// Service implements interfaces.DocumentService
type Service struct {
	logger       arbor.ILogger
	theme        models.Theme
	chartWidthMM float64
}

// Compile-time assertion
var _ interfaces.DocumentService = (*Service)(nil)

// NewService creates a new document service. The theme is shared with the
// deck service so colors match across both outputs.
func NewService(logger arbor.ILogger, theme models.Theme, chartWidthMM float64) *Service {
	return &Service{
		logger:       logger,
		theme:        theme,
		chartWidthMM: chartWidthMM,
	}
}

// BuildDocument assembles the fixed section sequence: executive summary,
// exchange comparison, technical analysis with chart, educational content.
func (s *Service) BuildDocument(bundle *models.AnalysisBundle, signal models.Signal) models.DocumentSpec {
	blocks := []models.Block{}
	blocks = append(blocks, s.summarySection(bundle, signal)...)
	blocks = append(blocks, models.PageBreak{})
	blocks = append(blocks, s.exchangeSection(bundle)...)
	blocks = append(blocks, models.PageBreak{})
	blocks = append(blocks, s.analysisSection(bundle)...)
	blocks = append(blocks, models.PageBreak{})
	blocks = append(blocks, educationBlocks()...)

	spec := models.DocumentSpec{
		Title:    fmt.Sprintf("%s Market Analysis", bundle.Symbol),
		Subtitle: fmt.Sprintf("Technical Analysis Report - %s", time.Now().Format("January 2, 2006")),
		Blocks:   blocks,
	}

	s.logger.Debug().
		Str("symbol", bundle.Symbol).
		Int("blocks", len(spec.Blocks)).
		Msg("Built document spec")

	return spec
}

func (s *Service) summarySection(bundle *models.AnalysisBundle, signal models.Signal) []models.Block {
	ind := bundle.Indicators
	recColor := s.theme.ForToken(signal.Color)

	trend := "DOWNTREND"
	trendColor := s.theme.Sell
	if ind.Uptrend() {
		trend = "UPTREND"
		trendColor = s.theme.Buy
	}

	return []models.Block{
		models.Heading{Text: "Executive Summary", Level: 1},
		models.Paragraph{Text: fmt.Sprintf("Recommendation: %s", signal.Recommendation), Bold: true, Color: &recColor},
		models.Paragraph{Text: signal.Reasoning, Italic: true},
		models.Heading{Text: "Key Metrics", Level: 2},
		models.Table{
			Header: []string{"Metric", "Value"},
			Rows: [][]models.Cell{
				{{Text: "Current Price"}, {Text: fmt.Sprintf("$%.2f", ind.Close)}},
				{{Text: "RSI (14)"}, {Text: fmt.Sprintf("%.2f", ind.RSI)}},
				{{Text: fmt.Sprintf("MA (%d)", ind.ShortMAPeriod)}, {Text: fmt.Sprintf("$%.2f", ind.ShortMA)}},
				{{Text: fmt.Sprintf("MA (%d)", ind.LongMAPeriod)}, {Text: fmt.Sprintf("$%.2f", ind.LongMA)}},
				{{Text: "Trend"}, {Text: trend, Bold: true, Color: &trendColor}},
			},
		},
	}
}

func (s *Service) exchangeSection(bundle *models.AnalysisBundle) []models.Block {
	sorted := models.SortExchangesByUSDTPairs(bundle.Exchanges)

	rows := make([][]models.Cell, len(sorted))
	for i, ex := range sorted {
		ohlcv := "No"
		if ex.HasOHLCV {
			ohlcv = "Yes"
		}
		rows[i] = []models.Cell{
			{Text: ex.Name, Bold: i == 0},
			{Text: fmt.Sprintf("%d", ex.TotalPairs)},
			{Text: fmt.Sprintf("%d", ex.USDTPairs)},
			{Text: ohlcv},
			{Text: ex.RateLimitHint},
		}
	}

	blocks := []models.Block{
		models.Heading{Text: "Exchange Comparison", Level: 1},
		models.Table{
			Header: []string{"Exchange", "Total Pairs", "USDT Pairs", "OHLCV", "Rate Limit"},
			Rows:   rows,
		},
		models.Heading{Text: "Exchange Recommendations", Level: 2},
	}

	items := []models.Bullet{}
	if len(sorted) > 0 {
		best := sorted[0]
		green := s.theme.Buy
		items = append(items, models.Bullet{
			Text:  fmt.Sprintf("%s offers the deepest USDT liquidity with %d pairs and is the primary recommendation.", best.Name, best.USDTPairs),
			Color: &green,
		})
		for _, ex := range sorted[1:] {
			if ex.HasOHLCV {
				items = append(items, models.Bullet{
					Text: fmt.Sprintf("%s is also viable with %d USDT pairs and full OHLCV data.", ex.Name, ex.USDTPairs),
				})
			}
		}
	}
	blocks = append(blocks, models.BulletList{Items: items})

	return blocks
}

func (s *Service) analysisSection(bundle *models.AnalysisBundle) []models.Block {
	blocks := []models.Block{
		models.Heading{Text: "Technical Analysis", Level: 1},
	}

	for _, sug := range bundle.Suggestions {
		color := s.theme.ForTag(sug.Tag)
		blocks = append(blocks,
			models.Heading{Text: headingForTag(sug.Tag), Level: 2, Color: &color},
			models.Paragraph{Text: models.StripLabel(sug.Text)},
		)
	}

	blocks = append(blocks, models.Heading{Text: "Price Chart", Level: 2})
	blocks = append(blocks, s.chartBlock(bundle))

	return blocks
}

func headingForTag(tag models.SuggestionTag) string {
	switch tag {
	case models.TagWarning:
		return "Momentum Warning"
	case models.TagOpportunity:
		return "Momentum Opportunity"
	case models.TagTrend:
		return "Trend Analysis"
	default:
		return "Technical Signal"
	}
}

func (s *Service) chartBlock(bundle *models.AnalysisBundle) models.Block {
	if bundle.ChartPath != "" {
		if _, err := os.Stat(bundle.ChartPath); err == nil {
			return models.Image{Path: bundle.ChartPath, WidthMM: s.chartWidthMM}
		}
		s.logger.Warn().Str("path", bundle.ChartPath).Msg("Chart image not found, using placeholder")
	}
	return models.Placeholder{Text: "Price chart pending."}
}
