package editor

import "github.com/pressnav/pressnav/internal/store"

// Palette row icons. Single-width runes keep the list aligned.
const (
	iconPost         = "✎"
	iconPage         = "▤"
	iconTemplate     = "▦"
	iconTemplatePart = "▢"
	iconNavigation   = "≡"
	iconStyles       = "◐"
	iconList         = "☰"
)

// IconForType maps a record type to its palette icon. Unknown types get none.
func IconForType(typ string) string {
	switch typ {
	case store.TypePost:
		return iconPost
	case store.TypePage:
		return iconPage
	case store.TypeTemplate:
		return iconTemplate
	case store.TypeTemplatePart:
		return iconTemplatePart
	default:
		return ""
	}
}
