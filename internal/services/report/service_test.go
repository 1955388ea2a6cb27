package report

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

func testBundle() *models.AnalysisBundle {
	return &models.AnalysisBundle{
		Symbol: "ETH/USDT",
		Exchanges: []models.ExchangeInfo{
			{Name: "kraken", TotalPairs: 650, USDTPairs: 120, HasOHLCV: true, RateLimitHint: "15/sec"},
			{Name: "binance", TotalPairs: 2100, USDTPairs: 410, HasOHLCV: true, RateLimitHint: "1200/min"},
		},
		Suggestions: []models.Suggestion{
			{Text: "WARNING: RSI approaching overbought", Tag: models.TagWarning},
			{Text: "OPPORTUNITY: pullback to support", Tag: models.TagOpportunity},
			{Text: "TREND: higher highs on the weekly", Tag: models.TagTrend},
			{Text: "Volume steady", Tag: models.TagNeutral},
		},
		Indicators: models.LatestIndicators{
			Close:         3150.25,
			RSI:           61.4,
			ShortMA:       3080,
			LongMA:        2910,
			ShortMAPeriod: 50,
			LongMAPeriod:  200,
		},
	}
}

func testSignal() models.Signal {
	return models.Signal{
		Recommendation: models.RecommendationHold,
		Color:          models.ColorAmber,
		Reasoning:      "Mixed signals with RSI at 61.40 in neutral territory. Waiting for clearer direction.",
	}
}

func headings(spec models.DocumentSpec) []string {
	var out []string
	for _, block := range spec.Blocks {
		if h, ok := block.(models.Heading); ok {
			out = append(out, h.Text)
		}
	}
	return out
}

func TestBuildDocumentSectionOrder(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	spec := svc.BuildDocument(testBundle(), testSignal())
	assert.Equal(t, "ETH/USDT Market Analysis", spec.Title)

	hs := headings(spec)
	require.NotEmpty(t, hs)
	assert.Equal(t, "Executive Summary", hs[0])

	idx := func(name string) int {
		for i, h := range hs {
			if h == name {
				return i
			}
		}
		return -1
	}
	assert.True(t, idx("Executive Summary") < idx("Exchange Comparison"))
	assert.True(t, idx("Exchange Comparison") < idx("Technical Analysis"))
	assert.True(t, idx("Technical Analysis") < idx("Understanding the Indicators"))
}

func TestBuildDocumentSuggestionHeadings(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	hs := headings(svc.BuildDocument(testBundle(), testSignal()))
	assert.Contains(t, hs, "Momentum Warning")
	assert.Contains(t, hs, "Momentum Opportunity")
	assert.Contains(t, hs, "Trend Analysis")
	assert.Contains(t, hs, "Technical Signal")
}

func TestBuildDocumentPageBreaks(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	spec := svc.BuildDocument(testBundle(), testSignal())

	breaks := 0
	for _, block := range spec.Blocks {
		if _, ok := block.(models.PageBreak); ok {
			breaks++
		}
	}
	assert.Equal(t, 3, breaks)
}

func TestBuildDocumentExchangeRecommendations(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	spec := svc.BuildDocument(testBundle(), testSignal())

	var lists []models.BulletList
	for _, block := range spec.Blocks {
		if l, ok := block.(models.BulletList); ok {
			lists = append(lists, l)
		}
	}
	require.NotEmpty(t, lists)

	recs := lists[0]
	require.Len(t, recs.Items, 2)
	assert.Contains(t, recs.Items[0].Text, "binance")
	assert.Contains(t, recs.Items[1].Text, "also viable")
	assert.Contains(t, recs.Items[1].Text, "kraken")
}

func TestBuildDocumentMissingChartPlaceholder(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	bundle := testBundle()
	bundle.ChartPath = filepath.Join(t.TempDir(), "missing.png")

	spec := svc.BuildDocument(bundle, testSignal())

	found := false
	for _, block := range spec.Blocks {
		if p, ok := block.(models.Placeholder); ok {
			found = true
			assert.Contains(t, p.Text, "pending")
		}
		_, isImage := block.(models.Image)
		assert.False(t, isImage)
	}
	assert.True(t, found)
}

func TestBuildDocumentExistingChartImage(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 0x1C, G: 0x28, B: 0x33, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	chartPath := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(chartPath, buf.Bytes(), 0644))

	bundle := testBundle()
	bundle.ChartPath = chartPath

	spec := svc.BuildDocument(bundle, testSignal())

	found := false
	for _, block := range spec.Blocks {
		if i, ok := block.(models.Image); ok {
			found = true
			assert.Equal(t, chartPath, i.Path)
		}
	}
	assert.True(t, found)
}

func TestRenderProducesPDF(t *testing.T) {
	svc := NewService(common.GetLogger(), models.DefaultTheme(), 160)

	spec := svc.BuildDocument(testBundle(), testSignal())
	data, err := svc.Render(spec)
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestParseMarkdown(t *testing.T) {
	blocks := parseMarkdown("# Title\n\nSome body text\nacross two lines.\n\n- first\n- second\n")

	require.Len(t, blocks, 3)

	h, ok := blocks[0].(models.Heading)
	require.True(t, ok)
	assert.Equal(t, "Title", h.Text)
	assert.Equal(t, 1, h.Level)

	p, ok := blocks[1].(models.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Some body text across two lines.", p.Text)

	list, ok := blocks[2].(models.BulletList)
	require.True(t, ok)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "first", list.Items[0].Text)
	assert.Equal(t, "second", list.Items[1].Text)
}
