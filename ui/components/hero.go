package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/ui/styles"
)

func RenderHero(t *i18n.Table, m models.AppModel, width int) string {
	lang := m.Language
	rtl := m.Document.Dir == i18n.RTL
	box := styles.Aligned(width, rtl)

	badges := []string{
		styles.BadgeStyle(styles.Success).Render("↑ " + t.T("higherProfit", lang)),
		styles.BadgeStyle(styles.Danger).Render("↓ " + t.T("lowerWaste", lang)),
	}
	if rtl {
		reverse(badges)
	}

	return join(
		box.Render(styles.HeroTitleStyle().Render(t.T("heroTitle", lang))),
		box.Render(t.T("heroSubtitle", lang)),
		box.Render(styles.WarningStyle().Render(t.T("lossWarning", lang))),
		box.Render(lipgloss.JoinHorizontal(lipgloss.Top, badges...)),
		box.Render(t.T("missionStatement", lang)),
	)
}
