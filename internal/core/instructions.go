package core

import (
	"strings"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
)

// Instruction templates take the brand name and the joined service titles.
var instructionTemplates = map[i18n.Language]string{
	i18n.Arabic: "أنت مستشار ذكي لشركة '{brand}'. {brand} تساعد المطاعم على زيادة أرباحها في تطبيقات التوصيل وتقليل الهدر. " +
		"أجب على استفسارات العملاء بأسلوب احترافي ومشجع وروج لخدماتنا: {services}. كن مختصراً وودوداً.",
	i18n.English: "You are an AI consultant for '{brand}'. {brand} helps restaurants increase profits in delivery apps and reduce waste. " +
		"Answer client inquiries professionally and encouragingly, promoting our services: {services}. Be concise and friendly.",
}

var listSeparators = map[i18n.Language]string{
	i18n.Arabic:  "، ",
	i18n.English: ", ",
}

// SystemInstructions holds the persona preamble sent with every request, one
// per language.
type SystemInstructions map[i18n.Language]string

// BuildInstructions renders the persona for every supported language from the
// brand name and the service catalog.
func BuildInstructions(texts *i18n.Table, services *catalog.Catalog) SystemInstructions {
	out := make(SystemInstructions, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		r := strings.NewReplacer(
			"{brand}", texts.T("brandName", lang),
			"{services}", strings.Join(services.Titles(lang), listSeparators[lang]),
		)
		out[lang] = r.Replace(instructionTemplates[lang])
	}
	return out
}

// For returns the instruction for lang.
func (s SystemInstructions) For(lang i18n.Language) string {
	return s[lang]
}
