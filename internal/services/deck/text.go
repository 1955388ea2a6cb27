package deck

import "strings"

// The core fpdf fonts cover latin-1 only. Runes outside that range (emoji
// bullet markers in particular) are dropped before drawing.
func latin1(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 256 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
