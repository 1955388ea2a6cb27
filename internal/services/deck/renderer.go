package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// 16:9 slide geometry in millimetres.
const (
	slideWidthMM  = 338.7
	slideHeightMM = 190.5
	slideMarginMM = 18.0
)

// Render draws each slide as a single-page PDF in a temporary working
// directory, then merges the pages into one deck file at outputPath.
// Intermediate files are removed best-effort; cleanup failures are logged
// and swallowed.
func (s *Service) Render(slides []models.SlideSpec, outputPath string) error {
	workDir := filepath.Join(os.TempDir(), "marketreport-"+uuid.New().String())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return fmt.Errorf("failed to create deck working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			s.logger.Warn().Err(err).Str("dir", workDir).Msg("Failed to clean up deck working directory")
		}
	}()

	slideFiles := make([]string, 0, len(slides))
	for i, slide := range slides {
		path := filepath.Join(workDir, fmt.Sprintf("slide_%02d.pdf", i+1))
		if err := s.renderSlide(slide, path); err != nil {
			return fmt.Errorf("failed to render slide %d (%s): %w", i+1, slide.Title, err)
		}
		slideFiles = append(slideFiles, path)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := api.MergeCreateFile(slideFiles, outputPath, false, nil); err != nil {
		return fmt.Errorf("failed to merge deck slides: %w", err)
	}

	s.logger.Info().
		Int("slides", len(slides)).
		Str("path", outputPath).
		Msg("Rendered slide deck")

	return nil
}

func (s *Service) renderSlide(slide models.SlideSpec, path string) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: slideWidthMM, Ht: slideHeightMM},
	})
	pdf.SetMargins(slideMarginMM, slideMarginMM, slideMarginMM)
	pdf.SetAutoPageBreak(false, slideMarginMM)
	pdf.AddPage()

	s.drawTitleBar(pdf, slide.Title)

	pdf.SetY(slideMarginMM + 22)
	for _, block := range slide.Blocks {
		s.drawBlock(pdf, block)
	}

	return pdf.OutputFileAndClose(path)
}

func (s *Service) drawTitleBar(pdf *fpdf.Fpdf, title string) {
	fill := s.theme.HeaderFill
	pdf.SetFillColor(fill.R, fill.G, fill.B)
	pdf.Rect(0, 0, slideWidthMM, 26, "F")

	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(slideMarginMM, 7)
	pdf.CellFormat(slideWidthMM-2*slideMarginMM, 12, title, "", 0, "L", false, 0, "")
	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
}

func (s *Service) drawBlock(pdf *fpdf.Fpdf, block models.Block) {
	switch b := block.(type) {
	case models.Paragraph:
		s.drawParagraph(pdf, b)
	case models.Table:
		s.drawTable(pdf, b)
	case models.BulletList:
		s.drawBullets(pdf, b)
	case models.Metrics:
		s.drawMetrics(pdf, b)
	case models.Image:
		s.drawImage(pdf, b)
	case models.Placeholder:
		s.drawPlaceholder(pdf, b)
	}
}

func (s *Service) drawParagraph(pdf *fpdf.Fpdf, p models.Paragraph) {
	style := ""
	if p.Bold {
		style += "B"
	}
	if p.Italic {
		style += "I"
	}
	pdf.SetFont("Arial", style, 16)
	if p.Color != nil {
		pdf.SetTextColor(p.Color.R, p.Color.G, p.Color.B)
	}
	pdf.SetX(slideMarginMM)
	pdf.MultiCell(slideWidthMM-2*slideMarginMM, 9, latin1(p.Text), "", "L", false)
	pdf.Ln(3)
	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
}

func (s *Service) drawTable(pdf *fpdf.Fpdf, t models.Table) {
	usable := slideWidthMM - 2*slideMarginMM
	colWidth := usable / float64(len(t.Header))

	fill := s.theme.HeaderFill
	line := s.theme.TableLine
	pdf.SetDrawColor(line.R, line.G, line.B)

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(fill.R, fill.G, fill.B)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(slideMarginMM)
	for _, h := range t.Header {
		pdf.CellFormat(colWidth, 11, latin1(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
	for _, row := range t.Rows {
		pdf.SetX(slideMarginMM)
		for _, cell := range row {
			style := ""
			if cell.Bold {
				style = "B"
			}
			pdf.SetFont("Arial", style, 13)
			if cell.Color != nil {
				pdf.SetTextColor(cell.Color.R, cell.Color.G, cell.Color.B)
			}
			pdf.CellFormat(colWidth, 10, latin1(cell.Text), "1", 0, "C", false, 0, "")
			pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (s *Service) drawBullets(pdf *fpdf.Fpdf, list models.BulletList) {
	pdf.SetFont("Arial", "", 15)
	for _, item := range list.Items {
		color := s.theme.BodyText
		if item.Color != nil {
			color = *item.Color
		}

		// Emoji markers fall outside the core latin-1 fonts, so each
		// bullet gets a disc in the tag color instead.
		y := pdf.GetY()
		pdf.SetFillColor(color.R, color.G, color.B)
		pdf.Circle(slideMarginMM+3, y+4.5, 2.2, "F")

		pdf.SetXY(slideMarginMM+9, y)
		pdf.SetTextColor(color.R, color.G, color.B)
		pdf.MultiCell(slideWidthMM-2*slideMarginMM-9, 9, latin1(item.Text), "", "L", false)
		pdf.Ln(1.5)
	}
	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
}

func (s *Service) drawMetrics(pdf *fpdf.Fpdf, m models.Metrics) {
	if len(m.Tiles) == 0 {
		return
	}

	usable := slideWidthMM - 2*slideMarginMM
	gap := 8.0
	tileWidth := (usable - gap*float64(len(m.Tiles)-1)) / float64(len(m.Tiles))
	tileHeight := 42.0
	y := pdf.GetY() + 4

	for i, tile := range m.Tiles {
		x := slideMarginMM + float64(i)*(tileWidth+gap)

		pdf.SetFillColor(0xF4, 0xF6, 0xF6)
		pdf.SetDrawColor(s.theme.TableLine.R, s.theme.TableLine.G, s.theme.TableLine.B)
		pdf.Rect(x, y, tileWidth, tileHeight, "FD")

		pdf.SetFont("Arial", "", 13)
		pdf.SetTextColor(s.theme.Muted.R, s.theme.Muted.G, s.theme.Muted.B)
		pdf.SetXY(x, y+6)
		pdf.CellFormat(tileWidth, 8, latin1(tile.Label), "", 0, "C", false, 0, "")

		value := s.theme.TitleText
		if tile.Color != nil {
			value = *tile.Color
		}
		pdf.SetFont("Arial", "B", 22)
		pdf.SetTextColor(value.R, value.G, value.B)
		pdf.SetXY(x, y+18)
		pdf.CellFormat(tileWidth, 14, latin1(tile.Value), "", 0, "C", false, 0, "")
	}

	pdf.SetY(y + tileHeight + 6)
	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
}

func (s *Service) drawImage(pdf *fpdf.Fpdf, img models.Image) {
	width := img.WidthMM
	if width <= 0 {
		width = slideWidthMM - 2*slideMarginMM
	}
	x := (slideWidthMM - width) / 2
	pdf.ImageOptions(img.Path, x, pdf.GetY(), width, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
}

func (s *Service) drawPlaceholder(pdf *fpdf.Fpdf, p models.Placeholder) {
	pdf.SetFont("Arial", "I", 15)
	pdf.SetTextColor(s.theme.Muted.R, s.theme.Muted.G, s.theme.Muted.B)
	pdf.SetX(slideMarginMM)
	pdf.MultiCell(slideWidthMM-2*slideMarginMM, 9, latin1(p.Text), "", "C", false)
	pdf.SetTextColor(s.theme.BodyText.R, s.theme.BodyText.G, s.theme.BodyText.B)
}
