package report

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/models"
)

// educationBlocks parses the embedded educational markdown into content
// blocks once per build.
func educationBlocks() []models.Block {
	return parseMarkdown(educationMarkdown)
}

// parseMarkdown converts markdown source into document content blocks.
// Headings, paragraphs and bullet lists are supported; inline emphasis is
// flattened into plain text.
func parseMarkdown(source string) []models.Block {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	)

	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []models.Block
	var bullets []models.Bullet

	flushBullets := func() {
		if len(bullets) > 0 {
			blocks = append(blocks, models.BulletList{Items: bullets})
			bullets = nil
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			flushBullets()
			blocks = append(blocks, models.Heading{
				Text:  nodeText(node, src),
				Level: node.Level,
			})
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			bullets = append(bullets, models.Bullet{Text: nodeText(node, src)})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			// Paragraphs inside list items are handled by the item itself.
			if _, inItem := node.Parent().(*ast.ListItem); inItem {
				return ast.WalkContinue, nil
			}
			flushBullets()
			blocks = append(blocks, models.Paragraph{Text: nodeText(node, src)})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	flushBullets()

	return blocks
}

// nodeText extracts the plain text of a node, joining soft-wrapped lines
// with spaces.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
