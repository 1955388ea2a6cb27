package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// A4 page geometry in millimetres.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	pageMarginMM = 15.0
	contentWidth = pageWidthMM - 2*pageMarginMM
)

// Render produces the document as PDF bytes.
func (s *Service) Render(spec models.DocumentSpec) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)
	pdf.AddPage()

	r := &docRenderer{pdf: pdf, theme: s.theme}
	r.drawTitle(spec.Title, spec.Subtitle)

	for _, block := range spec.Blocks {
		r.drawBlock(block)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate document output")
		return nil, fmt.Errorf("failed to generate document output: %w", err)
	}

	s.logger.Debug().Int("pdf_size", buf.Len()).Msg("Document rendered")
	return buf.Bytes(), nil
}

type docRenderer struct {
	pdf   *fpdf.Fpdf
	theme models.Theme
}

func (r *docRenderer) drawTitle(title, subtitle string) {
	t := r.theme.TitleText
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(t.R, t.G, t.B)
	r.pdf.MultiCell(contentWidth, 11, title, "", "C", false)

	if subtitle != "" {
		m := r.theme.Muted
		r.pdf.SetFont("Arial", "I", 12)
		r.pdf.SetTextColor(m.R, m.G, m.B)
		r.pdf.MultiCell(contentWidth, 7, subtitle, "", "C", false)
	}

	r.pdf.Ln(6)
	r.resetText()
}

func (r *docRenderer) resetText() {
	b := r.theme.BodyText
	r.pdf.SetTextColor(b.R, b.G, b.B)
	r.pdf.SetFont("Arial", "", 10)
}

func (r *docRenderer) drawBlock(block models.Block) {
	switch b := block.(type) {
	case models.Heading:
		r.drawHeading(b)
	case models.Paragraph:
		r.drawParagraph(b)
	case models.Table:
		r.drawTable(b)
	case models.BulletList:
		r.drawBullets(b)
	case models.Image:
		r.drawImage(b)
	case models.Placeholder:
		r.drawPlaceholder(b)
	case models.PageBreak:
		r.pdf.AddPage()
	}
}

func (r *docRenderer) drawHeading(h models.Heading) {
	size := 16.0
	switch h.Level {
	case 1:
		size = 16
	case 2:
		size = 13
	default:
		size = 11
	}

	color := r.theme.TitleText
	if h.Color != nil {
		color = *h.Color
	}

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", size)
	r.pdf.SetTextColor(color.R, color.G, color.B)
	r.pdf.MultiCell(contentWidth, size*0.55, h.Text, "", "L", false)
	r.pdf.Ln(1)
	r.resetText()
}

func (r *docRenderer) drawParagraph(p models.Paragraph) {
	style := ""
	if p.Bold {
		style += "B"
	}
	if p.Italic {
		style += "I"
	}
	r.pdf.SetFont("Arial", style, 10)
	if p.Color != nil {
		r.pdf.SetTextColor(p.Color.R, p.Color.G, p.Color.B)
	}
	r.pdf.MultiCell(contentWidth, 5.5, p.Text, "", "L", false)
	r.pdf.Ln(2)
	r.resetText()
}

func (r *docRenderer) drawBullets(list models.BulletList) {
	for _, item := range list.Items {
		color := r.theme.BodyText
		if item.Color != nil {
			color = *item.Color
		}
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.SetTextColor(color.R, color.G, color.B)

		r.pdf.SetX(pageMarginMM + 2)
		r.pdf.CellFormat(5, 5.5, "-", "", 0, "L", false, 0, "")
		r.pdf.MultiCell(contentWidth-7, 5.5, item.Text, "", "L", false)
		r.pdf.Ln(0.5)
	}
	r.pdf.Ln(2)
	r.resetText()
}

func (r *docRenderer) drawImage(img models.Image) {
	width := img.WidthMM
	if width <= 0 || width > contentWidth {
		width = contentWidth
	}
	x := (pageWidthMM - width) / 2
	r.pdf.ImageOptions(img.Path, x, r.pdf.GetY(), width, 0, true, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	r.pdf.Ln(4)
}

func (r *docRenderer) drawPlaceholder(p models.Placeholder) {
	m := r.theme.Muted
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(m.R, m.G, m.B)
	r.pdf.MultiCell(contentWidth, 5.5, p.Text, "", "L", false)
	r.pdf.Ln(2)
	r.resetText()
}

func (r *docRenderer) drawTable(t models.Table) {
	if len(t.Header) == 0 {
		return
	}

	r.pdf.Ln(2)

	numCols := len(t.Header)
	fontSize := 9.0
	lineHeight := 4.5

	colWidths := r.tableColumnWidths(t, numCols, fontSize)

	fill := r.theme.HeaderFill
	line := r.theme.TableLine
	r.pdf.SetDrawColor(line.R, line.G, line.B)

	// Header row
	r.pdf.SetFont("Arial", "B", fontSize)
	r.pdf.SetFillColor(fill.R, fill.G, fill.B)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetX(pageMarginMM)
	for j, h := range t.Header {
		r.pdf.CellFormat(colWidths[j], lineHeight+2, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.resetText()

	for _, row := range t.Rows {
		// Max lines needed for this row using measured string widths
		maxLines := 1
		for j, cell := range row {
			if j < numCols {
				r.pdf.SetFont("Arial", cellStyle(cell), fontSize)
				lines := r.linesNeeded(cell.Text, colWidths[j]-2)
				if lines > maxLines {
					maxLines = lines
				}
			}
		}
		if maxLines > 8 {
			maxLines = 8
		}

		rowHeight := float64(maxLines)*lineHeight + 2
		startY := r.pdf.GetY()
		startX := pageMarginMM

		if startY+rowHeight > pageHeightMM-pageMarginMM {
			r.pdf.AddPage()
			startY = r.pdf.GetY()
		}

		x := startX
		for j, cell := range row {
			if j >= numCols {
				break
			}
			r.pdf.Rect(x, startY, colWidths[j], rowHeight, "D")

			r.pdf.SetFont("Arial", cellStyle(cell), fontSize)
			if cell.Color != nil {
				r.pdf.SetTextColor(cell.Color.R, cell.Color.G, cell.Color.B)
			}
			r.pdf.SetXY(x+1, startY+1)
			r.cellText(cell.Text, colWidths[j]-2, lineHeight, maxLines)
			r.resetText()

			x += colWidths[j]
		}

		r.pdf.SetXY(startX, startY+rowHeight)
	}

	r.pdf.Ln(3)
	r.resetText()
}

func cellStyle(c models.Cell) string {
	if c.Bold {
		return "B"
	}
	return ""
}

// tableColumnWidths sizes columns from measured string widths, clamped and
// scaled to fit the content area.
func (r *docRenderer) tableColumnWidths(t models.Table, numCols int, fontSize float64) []float64 {
	colWidths := make([]float64, numCols)

	r.pdf.SetFont("Arial", "", fontSize)
	for _, row := range t.Rows {
		for j, cell := range row {
			if j < numCols {
				w := r.pdf.GetStringWidth(cell.Text) + 4
				if w > colWidths[j] {
					colWidths[j] = w
				}
			}
		}
	}

	r.pdf.SetFont("Arial", "B", fontSize)
	for j, h := range t.Header {
		w := r.pdf.GetStringWidth(h) + 4
		if w > colWidths[j] {
			colWidths[j] = w
		}
	}
	r.pdf.SetFont("Arial", "", fontSize)

	minWidth := 12.0
	maxWidth := contentWidth / 2.0
	for j := range colWidths {
		if colWidths[j] < minWidth {
			colWidths[j] = minWidth
		}
		if colWidths[j] > maxWidth {
			colWidths[j] = maxWidth
		}
	}

	total := 0.0
	for _, w := range colWidths {
		total += w
	}

	if total > contentWidth {
		scale := contentWidth / total
		for j := range colWidths {
			colWidths[j] *= scale
			if colWidths[j] < minWidth*0.8 {
				colWidths[j] = minWidth * 0.8
			}
		}
	} else if total < contentWidth*0.9 {
		scale := (contentWidth * 0.95) / total
		if scale > 1.5 {
			scale = 1.5
		}
		for j := range colWidths {
			colWidths[j] *= scale
		}
	}

	return colWidths
}

func (r *docRenderer) linesNeeded(text string, width float64) int {
	if text == "" || width <= 0 {
		return 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}

	lines := 1
	currentWidth := 0.0
	spaceWidth := r.pdf.GetStringWidth(" ")

	for _, word := range words {
		wordWidth := r.pdf.GetStringWidth(word)
		switch {
		case currentWidth == 0:
			currentWidth = wordWidth
		case currentWidth+spaceWidth+wordWidth <= width:
			currentWidth += spaceWidth + wordWidth
		default:
			lines++
			currentWidth = wordWidth
		}
	}

	return lines
}

// cellText renders word-wrapped text inside a cell, truncating with an
// ellipsis when maxLines is exceeded.
func (r *docRenderer) cellText(text string, width, lineHeight float64, maxLines int) {
	if text == "" {
		return
	}

	words := strings.Fields(text)
	var lines []string
	currentLine := ""
	currentWidth := 0.0
	spaceWidth := r.pdf.GetStringWidth(" ")

	for _, word := range words {
		wordWidth := r.pdf.GetStringWidth(word)
		switch {
		case currentLine == "":
			currentLine = word
			currentWidth = wordWidth
		case currentWidth+spaceWidth+wordWidth <= width:
			currentLine += " " + word
			currentWidth += spaceWidth + wordWidth
		default:
			lines = append(lines, currentLine)
			currentLine = word
			currentWidth = wordWidth
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	for i := 0; i < len(lines) && i < maxLines; i++ {
		line := lines[i]
		if i == maxLines-1 && len(lines) > maxLines {
			for r.pdf.GetStringWidth(line+"...") > width && len(line) > 3 {
				line = line[:len(line)-1]
			}
			line += "..."
		}
		r.pdf.CellFormat(width, lineHeight, line, "", 2, "L", false, 0, "")
	}
}
