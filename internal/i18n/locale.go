package i18n

import (
	"golang.org/x/text/language"
)

// Locale identifies one of the languages content is authored in
type Locale string

const (
	English Locale = "en"
	German  Locale = "de"

	// DefaultLocale is used for every unsupported or malformed locale value
	DefaultLocale = English
)

// Supported lists the locales content can be resolved for
var Supported = []Locale{English, German}

// Normalize coerces any locale value to a supported one.
// Region and script subtags are ignored ("de-CH" -> "de"); anything else
// falls back to DefaultLocale.
func Normalize(l Locale) Locale {
	tag, err := language.Parse(string(l))
	if err != nil {
		return DefaultLocale
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultLocale
	}

	switch base.String() {
	case "de":
		return German
	case "en":
		return English
	}
	return DefaultLocale
}

// IsSupported reports whether l is exactly one of the supported locales
func IsSupported(l Locale) bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}

// Localized holds the per-locale variants of a field as stored in the content store
type Localized[T any] struct {
	EN *T `json:"en,omitempty" yaml:"en,omitempty"`
	DE *T `json:"de,omitempty" yaml:"de,omitempty"`
}

// Text is a bilingual string field
type Text = Localized[string]

// Resolve returns the variant for the locale, or nil when that variant is missing.
// The other locale is never used as a substitute.
func (l Localized[T]) Resolve(locale Locale) *T {
	if Normalize(locale) == German {
		return l.DE
	}
	return l.EN
}

// NewText builds a bilingual string from both variants
func NewText(en, de string) Text {
	return Text{EN: &en, DE: &de}
}
