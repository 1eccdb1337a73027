package components

import (
	"fmt"
	"strings"

	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderChat draws the consultant panel. It renders nothing while the panel
// is closed.
func RenderChat(t *i18n.Table, m models.AppModel, width int) string {
	if !m.ChatOpen {
		return ""
	}
	lang := m.Language
	inner := width - 4

	header := styles.ChatHeaderStyle().Render(t.T("aiConsultant", lang)) + "  " +
		styles.OnlineStyle().Render("● "+t.T("availableNow", lang))

	var body string
	if len(m.Messages) == 0 {
		body = styles.PlaceholderStyle().Render(t.T("aiPlaceholder", lang))
	} else {
		body = RenderMessages(t, m.Messages, lang, inner)
	}
	if m.Loading {
		body += "\n\n" + styles.PlaceholderStyle().Render(strings.Repeat("•", 1+m.LoadingDots%3))
	}

	parts := []string{header, "", body}
	if len(m.Messages) == 0 {
		var chips []string
		for i, s := range update.Suggestions {
			chips = append(chips, styles.SuggestionStyle().Render(fmt.Sprintf("alt+%d  %s", i+1, t.T(s.LabelKey, lang))))
		}
		parts = append(parts, "", strings.Join(chips, "\n"))
	}
	parts = append(parts,
		"",
		RenderInput(m.Input, t.T("aiPlaceholder", lang), m.Loading, m.LoadingDots, inner),
		styles.PlaceholderStyle().Render(t.T("poweredBy", lang)),
	)

	panel := styles.Aligned(inner, m.Document.Dir == i18n.RTL).Render(strings.Join(parts, "\n"))
	return styles.ChatPanelStyle(width).Render(panel)
}
