// Package i18n holds the bilingual text model of the landing page: the
// supported languages, bilingual text pairs and the translation table.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects which side of every bilingual pair is shown.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Direction is the text direction of a rendered document.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Arabic, English}

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// Parse converts a language code into a Language.
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Arabic:
		return Arabic, nil
	case English:
		return English, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Dir is right-to-left for Arabic and left-to-right otherwise.
func (l Language) Dir() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

func (l Language) String() string { return string(l) }

// Match picks the best supported language for an Accept-Language header.
// fallback is returned when the header is empty or cannot be parsed.
func Match(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Languages[idx]
}
