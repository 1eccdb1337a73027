package components

import (
	"strings"

	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/utils"
	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderMessages draws the transcript in order. Assistant replies are
// rendered as markdown.
func RenderMessages(t *i18n.Table, messages []models.Message, lang i18n.Language, width int) string {
	var b strings.Builder

	userStyle := styles.UserStyle().MaxWidth(width)
	assistantStyle := styles.AssistantStyle().Width(width - 3)
	you := t.T("youLabel", lang)
	brand := t.T("brandName", lang)

	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case models.User:
			b.WriteString(userStyle.Render(you + ": " + msg.Text))
		case models.Assistant:
			b.WriteString(assistantStyle.Render(brand + ":\n" + utils.RenderMarkdown(msg.Text)))
		}
	}

	return b.String()
}
