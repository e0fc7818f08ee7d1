// Package i18n provides the localized user-facing strings for the palette.
// Strings route through an x/text message printer; adding a locale means
// registering catalog entries for its language tag.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, entry := range []struct{ key, value string }{
		{"(no title)", "(no title)"},
		{"Navigation", "Navigation"},
		{"Styles", "Styles"},
		{"Pages", "Pages"},
		{"Templates", "Templates"},
	} {
		_ = message.SetString(language.English, entry.key, entry.value)
	}
}

// Translator resolves message keys for one language.
type Translator struct {
	printer *message.Printer
}

// New builds a Translator for the given BCP 47 tag; unknown tags fall back
// to English.
func New(lang string) *Translator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Translator{printer: message.NewPrinter(tag)}
}

func (t *Translator) Sprintf(key message.Reference, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

// NoTitle is the placeholder label for records without a title.
func (t *Translator) NoTitle() string {
	return t.printer.Sprintf("(no title)")
}
