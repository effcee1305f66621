package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported display language.
type Locale string

const (
	EN Locale = "en"
	ID Locale = "id"
)

// Default is used when nothing better can be negotiated.
const Default = EN

var (
	supported = []Locale{EN, ID}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Indonesian})
)

// Supported returns the supported locales in preference order.
func Supported() []Locale {
	return append([]Locale(nil), supported...)
}

// Parse maps a language tag such as "id", "id-ID" or "en_US" to a supported locale.
func Parse(raw string) (Locale, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return EN, true
	case "id", "in":
		return ID, true
	default:
		return "", false
	}
}

// Negotiate picks a locale from an Accept-Language header, falling back when
// no supported language matches.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

// Text holds one string per supported locale.
type Text struct {
	EN string
	ID string
}

// In returns the text for the locale, falling back to English.
func (t Text) In(l Locale) string {
	if l == ID && t.ID != "" {
		return t.ID
	}
	return t.EN
}
