package model

import "strings"

// Language is one of the two supported template languages.
type Language string

const (
	LangEN Language = "en"
	LangAF Language = "af"
)

func (l Language) String() string { return string(l) }

// ParseLanguage normalizes input; empty => en.
// Returns (value, true) if valid; otherwise (en, false).
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en":
		return LangEN, true
	case "af":
		return LangAF, true
	default:
		return LangEN, false
	}
}

// Languages lists all supported languages in stable order.
func Languages() []Language { return []Language{LangEN, LangAF} }
