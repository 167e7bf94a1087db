package i18n

import "strings"

// Language identifies one of the site's supported content languages.
type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
)

// ParseLanguage normalizes a raw language code. Unknown or empty codes fall
// back to English so public rendering never fails on a bad query parameter.
func ParseLanguage(raw string) Language {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ru":
		return LanguageRU
	default:
		return LanguageEN
	}
}

// Valid reports whether the language is one of the supported codes.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageRU
}

// Other returns the opposite supported language.
func (l Language) Other() Language {
	if l == LanguageRU {
		return LanguageEN
	}
	return LanguageRU
}

// Text carries both language variants of a single content field plus the
// unpostfixed legacy value kept from documents written before the site went
// bilingual.
type Text struct {
	EN     string `bun:"en" json:"en"`
	RU     string `bun:"ru" json:"ru"`
	Legacy string `bun:"legacy,nullzero" json:"legacy,omitempty"`
}

// NewText builds a Text with both variants populated.
func NewText(en, ru string) Text {
	return Text{EN: en, RU: ru}
}

// Resolve returns the best value for the requested language. The fallback
// chain is requested variant, then the other variant, then the legacy value,
// then the empty string. It never fails.
func (t Text) Resolve(lang Language) string {
	first, second := t.EN, t.RU
	if lang == LanguageRU {
		first, second = t.RU, t.EN
	}
	if first != "" {
		return first
	}
	if second != "" {
		return second
	}
	return t.Legacy
}

// IsZero reports whether no variant carries content.
func (t Text) IsZero() bool {
	return t.EN == "" && t.RU == "" && t.Legacy == ""
}

// Mirror fills an empty variant with the other one. Admin writes apply it so
// records saved with a single language still render in both.
func Mirror(t Text) Text {
	if t.EN == "" {
		t.EN = t.RU
	}
	if t.RU == "" {
		t.RU = t.EN
	}
	if t.EN == "" && t.Legacy != "" {
		t.EN = t.Legacy
		t.RU = t.Legacy
	}
	return t
}
