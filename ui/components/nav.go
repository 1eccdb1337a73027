package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderNav draws the top bar: brand, phone, language switch and the unread
// badge when replies arrived with the chat closed.
func RenderNav(t *i18n.Table, m models.AppModel, phone string, width int) string {
	lang := m.Language
	parts := []string{
		t.T("brandName", lang),
		"☎ " + phone,
		"[l] " + t.T("switchLanguage", lang),
	}
	if m.Unread > 0 {
		parts = append(parts, styles.UnreadStyle().Render(fmt.Sprintf("%d %s", m.Unread, t.T("unreadReplies", lang))))
	}
	if m.Document.Dir == i18n.RTL {
		reverse(parts)
	}
	return styles.NavStyle(width).Render(strings.Join(parts, "  │  "))
}

// RenderMenu lists the in-page sections. It renders nothing while closed.
func RenderMenu(t *i18n.Table, m models.AppModel, width int) string {
	if !m.MenuOpen {
		return ""
	}
	lang := m.Language
	items := []string{
		t.T("ourServices", lang),
		t.T("freeReview", lang),
		"[c] " + t.T("aiConsultant", lang),
	}
	block := styles.Aligned(width-4, m.Document.Dir == i18n.RTL).Render(strings.Join(items, "\n"))
	return styles.MenuStyle().Render(block)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func join(blocks ...string) string {
	kept := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
