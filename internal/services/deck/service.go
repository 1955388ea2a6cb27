package deck

import (
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/interfaces"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// Service implements interfaces.DeckService
type Service struct {
	logger     arbor.ILogger
	theme      models.Theme
	maxBullets int
}

// Compile-time assertion
var _ interfaces.DeckService = (*Service)(nil)

// NewService creates a new deck service. The theme is shared with the
// document service so colors match across both outputs. maxBullets caps the
// technical-analysis slide; zero means no cap.
func NewService(logger arbor.ILogger, theme models.Theme, maxBullets int) *Service {
	return &Service{
		logger:     logger,
		theme:      theme,
		maxBullets: maxBullets,
	}
}

// BuildDeck assembles the fixed eight-slide sequence:
// title, executive summary, exchange comparison, technical analysis,
// price chart, moving-average education, RSI education, disclaimer.
// Slide indices are stable; later processing steps depend on them.
func (s *Service) BuildDeck(bundle *models.AnalysisBundle, signal models.Signal) []models.SlideSpec {
	slides := []models.SlideSpec{
		s.titleSlide(bundle),
		s.summarySlide(bundle, signal),
		s.exchangeSlide(bundle),
		s.analysisSlide(bundle),
		s.chartSlide(bundle),
		s.movingAverageSlide(),
		s.rsiSlide(),
		s.disclaimerSlide(),
	}

	s.logger.Debug().
		Str("symbol", bundle.Symbol).
		Int("slides", len(slides)).
		Msg("Built slide deck spec")

	return slides
}

func (s *Service) titleSlide(bundle *models.AnalysisBundle) models.SlideSpec {
	title := s.theme.TitleText
	return models.SlideSpec{
		Title: fmt.Sprintf("%s Market Analysis", bundle.Symbol),
		Blocks: []models.Block{
			models.Paragraph{Text: "Cryptocurrency Technical Analysis Report", Color: &title},
			models.Paragraph{Text: time.Now().Format("January 2, 2006"), Italic: true},
		},
	}
}

func (s *Service) summarySlide(bundle *models.AnalysisBundle, signal models.Signal) models.SlideSpec {
	ind := bundle.Indicators
	recColor := s.theme.ForToken(signal.Color)

	trendLabel := "DOWNTREND"
	trendArrow := "▼"
	trendColor := s.theme.Sell
	if ind.Uptrend() {
		trendLabel = "UPTREND"
		trendArrow = "▲"
		trendColor = s.theme.Buy
	}

	rsiColor := s.theme.Hold
	switch {
	case ind.RSI < 30:
		rsiColor = s.theme.Buy
	case ind.RSI > 70:
		rsiColor = s.theme.Sell
	}

	return models.SlideSpec{
		Title: "Executive Summary",
		Blocks: []models.Block{
			models.Paragraph{Text: fmt.Sprintf("Recommendation: %s", signal.Recommendation), Bold: true, Color: &recColor},
			models.Paragraph{Text: signal.Reasoning, Italic: true},
			models.Metrics{Tiles: []models.MetricTile{
				{Label: "Price", Value: fmt.Sprintf("$%.2f", ind.Close)},
				{Label: "RSI", Value: fmt.Sprintf("%.2f", ind.RSI), Color: &rsiColor},
				{Label: "Trend", Value: fmt.Sprintf("%s %s", trendArrow, trendLabel), Color: &trendColor},
			}},
		},
	}
}

func (s *Service) exchangeSlide(bundle *models.AnalysisBundle) models.SlideSpec {
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
		}
	}

	blocks := []models.Block{
		models.Table{
			Header: []string{"Exchange", "Total Pairs", "USDT Pairs", "OHLCV"},
			Rows:   rows,
		},
	}
	if best, ok := bundle.BestExchange(); ok {
		blocks = append(blocks, models.Paragraph{
			Text: fmt.Sprintf("Best exchange for trading: %s with %d USDT pairs.", best.Name, best.USDTPairs),
			Bold: true,
		})
	}

	return models.SlideSpec{Title: "Exchange Comparison", Blocks: blocks}
}

func (s *Service) analysisSlide(bundle *models.AnalysisBundle) models.SlideSpec {
	suggestions := bundle.Suggestions
	if s.maxBullets > 0 && len(suggestions) > s.maxBullets {
		s.logger.Debug().
			Int("total", len(suggestions)).
			Int("max", s.maxBullets).
			Msg("Truncating technical-analysis bullets")
		suggestions = suggestions[:s.maxBullets]
	}

	items := make([]models.Bullet, len(suggestions))
	for i, sug := range suggestions {
		color := s.theme.ForTag(sug.Tag)
		items[i] = models.Bullet{
			Marker: markerForTag(sug.Tag),
			Text:   models.StripLabel(sug.Text),
			Color:  &color,
		}
	}

	return models.SlideSpec{
		Title:  "Technical Analysis",
		Blocks: []models.Block{models.BulletList{Items: items}},
	}
}

func markerForTag(tag models.SuggestionTag) string {
	switch tag {
	case models.TagBullish:
		return "🟢"
	case models.TagBearish:
		return "🔴"
	case models.TagWarning:
		return "⚠️"
	default:
		return "📊"
	}
}

func (s *Service) chartSlide(bundle *models.AnalysisBundle) models.SlideSpec {
	var block models.Block = models.Placeholder{Text: "Chart image pending"}
	if bundle.ChartPath != "" {
		if _, err := os.Stat(bundle.ChartPath); err == nil {
			block = models.Image{Path: bundle.ChartPath, WidthMM: 240}
		} else {
			s.logger.Warn().Str("path", bundle.ChartPath).Msg("Chart image not found, using placeholder")
		}
	}

	return models.SlideSpec{Title: "Price Chart", Blocks: []models.Block{block}}
}

func (s *Service) movingAverageSlide() models.SlideSpec {
	return models.SlideSpec{
		Title: "Understanding Moving Averages",
		Blocks: []models.Block{
			models.BulletList{Items: []models.Bullet{
				{Text: "A moving average smooths price data to reveal the underlying trend."},
				{Text: "Short-period averages react quickly; long-period averages filter noise."},
				{Text: "Golden Cross: the short MA crosses above the long MA, a bullish signal."},
				{Text: "Death Cross: the short MA crosses below the long MA, a bearish signal."},
				{Text: "Price above both averages generally confirms an uptrend."},
			}},
		},
	}
}

func (s *Service) rsiSlide() models.SlideSpec {
	return models.SlideSpec{
		Title: "Understanding RSI",
		Blocks: []models.Block{
			models.BulletList{Items: []models.Bullet{
				{Text: "The Relative Strength Index measures momentum on a 0-100 scale."},
				{Text: "Readings below 30 indicate oversold conditions and potential buying opportunities."},
				{Text: "Readings above 70 indicate overbought conditions and potential selling pressure."},
				{Text: "Readings between 30 and 70 are neutral territory."},
				{Text: "RSI divergence from price can signal an upcoming reversal."},
			}},
		},
	}
}

func (s *Service) disclaimerSlide() models.SlideSpec {
	return models.SlideSpec{
		Title: "Risk Disclaimer",
		Blocks: []models.Block{
			models.BulletList{Items: []models.Bullet{
				{Text: "This report is for informational purposes only and is not financial advice."},
				{Text: "Cryptocurrency markets are highly volatile and past performance does not guarantee future results."},
				{Text: "Never invest more than you can afford to lose."},
				{Text: "Always do your own research before making investment decisions."},
			}},
		},
	}
}
