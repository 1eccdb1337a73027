package components

import (
	"fmt"
	"strings"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderServices draws one card per catalog entry in catalog order. The card
// under the cursor is highlighted and the active one shows its details.
func RenderServices(t *i18n.Table, services *catalog.Catalog, m models.AppModel, width int) string {
	lang := m.Language
	rtl := m.Document.Dir == i18n.RTL
	inner := width - 4

	cards := []string{styles.Aligned(width, rtl).Render(styles.SectionTitleStyle().Render(t.T("ourServices", lang)))}
	for i, item := range services.Items() {
		active := item.ID == m.ActiveTab

		lines := []string{
			fmt.Sprintf("%s  %s", item.Icon, styles.ChatHeaderStyle().Render(item.Title.Get(lang))),
			item.Description.Get(lang),
		}
		if active {
			for _, d := range item.Details.Get(lang) {
				lines = append(lines, styles.DetailStyle().Render("✓ "+d))
			}
			lines = append(lines, "[enter] "+t.T("closeDetails", lang))
		} else {
			lines = append(lines, "[enter] "+t.T("learnMore", lang))
		}

		body := styles.Aligned(inner, rtl).Render(strings.Join(lines, "\n"))
		cards = append(cards, styles.CardStyle(i == m.Cursor, active).Render(body))
	}
	return join(cards...)
}
