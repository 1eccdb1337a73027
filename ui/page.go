// Package ui renders the landing page for the terminal.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
	"github.com/kayan-consulting/kayan/ui/components"
)

// DefaultWidth is used until the terminal reports its size.
const DefaultWidth = 80

// Page renders a view state. Render has no side effects.
type Page struct {
	Texts    *i18n.Table
	Services *catalog.Catalog
	Phone    string
	Now      func() time.Time
}

func (p Page) Render(m models.AppModel) string {
	top, content, bottom := p.sections(m)
	if m.Height > 0 {
		room := m.Height - lipgloss.Height(top) - lipgloss.Height(bottom)
		content = viewport(content, m.Scroll, room)
	}
	return joinNonEmpty(top, content, bottom)
}

// MaxScroll is the largest useful scroll offset for m: the number of content
// lines that do not fit between the header and the chat panel.
func (p Page) MaxScroll(m models.AppModel) int {
	if m.Height <= 0 {
		return 0
	}
	top, content, bottom := p.sections(m)
	room := max(m.Height-lipgloss.Height(top)-lipgloss.Height(bottom), 0)
	return max(lipgloss.Height(content)-room, 0)
}

func (p Page) sections(m models.AppModel) (top, content, bottom string) {
	width := m.Width
	if width <= 0 {
		width = DefaultWidth
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	top = joinNonEmpty(
		components.RenderNav(p.Texts, m, p.Phone, width),
		components.RenderMenu(p.Texts, m, width),
	)
	content = joinNonEmpty(
		components.RenderHero(p.Texts, m, width),
		components.RenderServices(p.Texts, p.Services, m, width),
		components.RenderCTA(p.Texts, m, p.Phone, width),
		components.RenderFooter(p.Texts, m, now().Year(), width),
	)
	bottom = joinNonEmpty(
		components.RenderChat(p.Texts, m, width),
		components.RenderStatus(m.Status, p.helpLine(m, width), width),
	)
	return top, content, bottom
}

func (p Page) helpLine(m models.AppModel, width int) string {
	h := help.New()
	h.Width = width - 2
	if m.ChatOpen {
		return h.View(update.Chat)
	}
	return h.View(update.Page)
}

// viewport returns at most height lines of s starting at offset, clamping
// offset to the available content.
func viewport(s string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset = min(max(offset, 0), maxOffset)
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

func joinNonEmpty(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
