package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderCTA draws the free-review call to action with its trust badges.
func RenderCTA(t *i18n.Table, m models.AppModel, phone string, width int) string {
	lang := m.Language
	rtl := m.Document.Dir == i18n.RTL
	box := styles.Aligned(width-4, rtl)

	badges := []string{
		"✓ " + t.T("badgeFreeReview", lang),
		"✓ " + t.T("badgeNoObligations", lang),
		"✓ " + t.T("badgeProvenResults", lang),
	}
	if rtl {
		reverse(badges)
	}

	body := join(
		box.Render(styles.HeroTitleStyle().Foreground(styles.Accent).Render(t.T("freeReview", lang))),
		box.Render(t.T("ctaSubtitle", lang)),
		box.Render(styles.ButtonStyle().Render(t.T("ctaButton", lang)+"  ☎ "+phone)),
		box.Render(lipgloss.JoinHorizontal(lipgloss.Top, spaced(badges)...)),
	)
	return styles.CTAStyle(width).Render(body)
}

// RenderFooter draws the copyright line for year.
func RenderFooter(t *i18n.Table, m models.AppModel, year, width int) string {
	lang := m.Language
	line := fmt.Sprintf("© %d %s. %s", year, t.T("brandName", lang), t.T("rightsReserved", lang))
	return styles.FooterStyle(width).Render(styles.Aligned(width, m.Document.Dir == i18n.RTL).Render(line))
}

func spaced(items []string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, it)
	}
	return out
}
