package models

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B int
}

// Theme carries every presentation constant shared by the deck and document
// renderers. A single theme instance is injected into both so recommendation
// colors stay identical across output formats.
type Theme struct {
	Buy        RGB
	Sell       RGB
	Hold       RGB
	HeaderFill RGB
	TitleText  RGB
	BodyText   RGB
	TableLine  RGB
	Muted      RGB
}

// DefaultTheme is the standard report palette.
func DefaultTheme() Theme {
	return Theme{
		Buy:        RGB{R: 0x2E, G: 0xCC, B: 0x71},
		Sell:       RGB{R: 0xE7, G: 0x4C, B: 0x3C},
		Hold:       RGB{R: 0xF3, G: 0x9C, B: 0x12},
		HeaderFill: RGB{R: 0x2E, G: 0x40, B: 0x53},
		TitleText:  RGB{R: 0x1C, G: 0x28, B: 0x33},
		BodyText:   RGB{R: 0x33, G: 0x33, B: 0x33},
		TableLine:  RGB{R: 0xBF, G: 0xC9, B: 0xCA},
		Muted:      RGB{R: 0x7F, G: 0x8C, B: 0x8D},
	}
}

// ForToken resolves a palette token to its themed color.
func (t Theme) ForToken(token ColorToken) RGB {
	switch token {
	case ColorGreen:
		return t.Buy
	case ColorRed:
		return t.Sell
	case ColorAmber:
		return t.Hold
	default:
		return t.BodyText
	}
}

// ForTag resolves a suggestion tag to its themed color.
func (t Theme) ForTag(tag SuggestionTag) RGB {
	switch tag {
	case TagBullish, TagOpportunity:
		return t.Buy
	case TagBearish:
		return t.Sell
	case TagWarning:
		return t.Hold
	default:
		return t.BodyText
	}
}
