package models

// Block is one content element inside a slide or document section. Specs are
// built once by the assemblers, then handed to a renderer and never mutated.
type Block interface {
	blockType() string
}

// Heading is a section heading. Level 1 is the largest.
type Heading struct {
	Text  string
	Level int
	Color *RGB
}

// Paragraph is a run of body text.
type Paragraph struct {
	Text   string
	Bold   bool
	Italic bool
	Color  *RGB
}

// Cell is one table cell.
type Cell struct {
	Text  string
	Bold  bool
	Color *RGB
}

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// Bullet is one bulleted line. Marker is an optional leading glyph kept in
// the spec so tests can assert on it independently of font support in any
// particular renderer.
type Bullet struct {
	Marker string
	Text   string
	Color  *RGB
}

// BulletList is an ordered set of bullets.
type BulletList struct {
	Items []Bullet
}

// Image embeds a raster file by path.
type Image struct {
	Path    string
	WidthMM float64
}

// Placeholder marks a position where an optional asset was unavailable. The
// renderer draws it as italic muted text, byte-distinguishable from an image.
type Placeholder struct {
	Text string
}

// MetricTile is one value tile on the executive-summary slide.
type MetricTile struct {
	Label string
	Value string
	Color *RGB
}

// Metrics lays out a row of tiles.
type Metrics struct {
	Tiles []MetricTile
}

// PageBreak starts a new page in the paginated document.
type PageBreak struct{}

func (Heading) blockType() string     { return "heading" }
func (Paragraph) blockType() string   { return "paragraph" }
func (Table) blockType() string       { return "table" }
func (BulletList) blockType() string  { return "bullets" }
func (Image) blockType() string       { return "image" }
func (Placeholder) blockType() string { return "placeholder" }
func (Metrics) blockType() string     { return "metrics" }
func (PageBreak) blockType() string   { return "pagebreak" }

// SlideSpec describes one slide: a title plus ordered content blocks.
type SlideSpec struct {
	Title  string
	Blocks []Block
}

// DocumentSpec describes the full paginated document.
type DocumentSpec struct {
	Title    string
	Subtitle string
	Blocks   []Block
}
