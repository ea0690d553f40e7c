package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language selects which name field a search matches against.
type Language int

const (
	LanguageEnglish Language = iota
	LanguageThai
	// LanguageAny matches either name field.
	LanguageAny
)

func (l Language) String() string {
	switch l {
	case LanguageThai:
		return "thai"
	case LanguageAny:
		return "any"
	default:
		return "english"
	}
}

// ParseLanguage maps "thai" or "th" to LanguageThai. Every other value is
// English, matching how the published clients treat the parameter.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thai", "th":
		return LanguageThai
	default:
		return LanguageEnglish
	}
}

func (l Language) tag() language.Tag {
	if l == LanguageThai {
		return language.Thai
	}
	return language.English
}

// folder lowercases text with the locale rules of one language. It wraps a
// cases.Caser, which is stateful, so a folder must stay on one goroutine.
type folder struct {
	caser cases.Caser
}

func newFolder(l Language) folder {
	return folder{caser: cases.Lower(l.tag())}
}

func (f folder) fold(s string) string {
	return f.caser.String(s)
}

func (f folder) contains(s, foldedQuery string) bool {
	return strings.Contains(f.fold(s), foldedQuery)
}
