package deck

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/common"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 0x2E, G: 0x40, B: 0x53, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testBundle() *models.AnalysisBundle {
	return &models.AnalysisBundle{
		Symbol: "BTC/USDT",
		Exchanges: []models.ExchangeInfo{
			{Name: "kraken", TotalPairs: 650, USDTPairs: 120, HasOHLCV: true},
			{Name: "binance", TotalPairs: 2100, USDTPairs: 410, HasOHLCV: true},
			{Name: "gemini", TotalPairs: 140, USDTPairs: 30, HasOHLCV: false},
		},
		Suggestions: []models.Suggestion{
			{Text: "BULLISH: Golden Cross detected", Tag: models.TagBullish},
			{Text: "WARNING: approaching resistance", Tag: models.TagWarning},
			{Text: "Volume trending higher", Tag: models.TagNeutral},
		},
		Indicators: models.LatestIndicators{
			Close:   51234.56,
			RSI:     44.2,
			ShortMA: 50100,
			LongMA:  48900,
		},
	}
}

func testSignal() models.Signal {
	return models.Signal{
		Recommendation: models.RecommendationBuy,
		Color:          models.ColorGreen,
		Reasoning:      "Bullish signals outweigh bearish signals (2 vs 0) with RSI at 44.20.",
	}
}

func TestBuildDeckSlideOrder(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	slides := svc.BuildDeck(testBundle(), testSignal())
	require.Len(t, slides, 8)

	assert.Equal(t, "BTC/USDT Market Analysis", slides[0].Title)
	assert.Equal(t, "Executive Summary", slides[1].Title)
	assert.Equal(t, "Exchange Comparison", slides[2].Title)
	assert.Equal(t, "Technical Analysis", slides[3].Title)
	assert.Equal(t, "Price Chart", slides[4].Title)
	assert.Equal(t, "Understanding Moving Averages", slides[5].Title)
	assert.Equal(t, "Understanding RSI", slides[6].Title)
	assert.Equal(t, "Risk Disclaimer", slides[7].Title)
}

func TestBuildDeckSummaryMetrics(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	slides := svc.BuildDeck(testBundle(), testSignal())

	var metrics *models.Metrics
	for _, block := range slides[1].Blocks {
		if m, ok := block.(models.Metrics); ok {
			metrics = &m
		}
	}
	require.NotNil(t, metrics)
	require.Len(t, metrics.Tiles, 3)
	assert.Equal(t, "Price", metrics.Tiles[0].Label)
	assert.Equal(t, "$51234.56", metrics.Tiles[0].Value)
	assert.Equal(t, "RSI", metrics.Tiles[1].Label)
	assert.Equal(t, "44.20", metrics.Tiles[1].Value)
	assert.Contains(t, metrics.Tiles[2].Value, "UPTREND")
}

func TestBuildDeckExchangeTableSorted(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	slides := svc.BuildDeck(testBundle(), testSignal())

	table, ok := slides[2].Blocks[0].(models.Table)
	require.True(t, ok)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "binance", table.Rows[0][0].Text)
	assert.Equal(t, "kraken", table.Rows[1][0].Text)
	assert.Equal(t, "gemini", table.Rows[2][0].Text)

	// The best-exchange sentence must cite the top row.
	sentence, ok := slides[2].Blocks[1].(models.Paragraph)
	require.True(t, ok)
	assert.Contains(t, sentence.Text, "binance")
	assert.Contains(t, sentence.Text, "410")
}

func TestBuildDeckSuggestionMarkers(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	slides := svc.BuildDeck(testBundle(), testSignal())

	list, ok := slides[3].Blocks[0].(models.BulletList)
	require.True(t, ok)
	require.Len(t, list.Items, 3)

	assert.Equal(t, "🟢", list.Items[0].Marker)
	assert.Equal(t, "Golden Cross detected", list.Items[0].Text)
	assert.Equal(t, "⚠️", list.Items[1].Marker)
	assert.Equal(t, "approaching resistance", list.Items[1].Text)
	assert.Equal(t, "📊", list.Items[2].Marker)
	assert.Equal(t, "Volume trending higher", list.Items[2].Text)
}

func TestBuildDeckBulletCap(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 2)

	slides := svc.BuildDeck(testBundle(), testSignal())
	list, ok := slides[3].Blocks[0].(models.BulletList)
	require.True(t, ok)
	assert.Len(t, list.Items, 2)
}

func TestBuildDeckMissingChartUsesPlaceholder(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	bundle := testBundle()
	bundle.ChartPath = filepath.Join(t.TempDir(), "missing.png")

	slides := svc.BuildDeck(bundle, testSignal())
	_, ok := slides[4].Blocks[0].(models.Placeholder)
	assert.True(t, ok)
}

func TestBuildDeckExistingChartUsesImage(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	chartPath := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(chartPath, testPNG(t), 0644))

	bundle := testBundle()
	bundle.ChartPath = chartPath

	slides := svc.BuildDeck(bundle, testSignal())
	img, ok := slides[4].Blocks[0].(models.Image)
	require.True(t, ok)
	assert.Equal(t, chartPath, img.Path)
}

func TestRenderWritesDeckFile(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 0)

	bundle := testBundle()
	slides := svc.BuildDeck(bundle, testSignal())

	outputPath := filepath.Join(t.TempDir(), "deck.pdf")
	require.NoError(t, svc.Render(slides, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}
