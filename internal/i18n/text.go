package i18n

// Text is a bilingual string pair.
type Text struct {
	AR string `yaml:"ar"`
	EN string `yaml:"en"`
}

// Get returns the side of the pair for lang.
func (t Text) Get(lang Language) string {
	if lang == Arabic {
		return t.AR
	}
	return t.EN
}

// Complete reports whether both languages are populated.
func (t Text) Complete() bool {
	return t.AR != "" && t.EN != ""
}

// TextList is a bilingual list of strings, such as detail bullets.
type TextList struct {
	AR []string `yaml:"ar"`
	EN []string `yaml:"en"`
}

// Get returns the list for lang.
func (t TextList) Get(lang Language) []string {
	if lang == Arabic {
		return t.AR
	}
	return t.EN
}
