package web

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.tmpl"))

// replyPolicy limits assistant markup to what user-generated content may use.
var replyPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

var markdown = goldmark.New()

type serviceView struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Details     []string
	Active      bool
}

type messageView struct {
	User bool
	Text string
	HTML template.HTML
}

type suggestionView struct {
	N     int
	Label string
}

type pageData struct {
	Lang        string
	Dir         string
	T           map[string]string
	Phone       string
	Year        int
	MenuOpen    bool
	ChatOpen    bool
	Loading     bool
	Unread      int
	Input       string
	Services    []serviceView
	Messages    []messageView
	Suggestions []suggestionView
}

// buildPage resolves a view state into template data. It has no side
// effects.
func buildPage(m models.AppModel, texts *i18n.Table, services *catalog.Catalog, phone string, year int) pageData {
	lang := m.Language
	d := pageData{
		Lang:     string(m.Document.Lang),
		Dir:      string(m.Document.Dir),
		T:        make(map[string]string),
		Phone:    phone,
		Year:     year,
		MenuOpen: m.MenuOpen,
		ChatOpen: m.ChatOpen,
		Loading:  m.Loading,
		Unread:   m.Unread,
		Input:    m.Input,
	}
	for _, k := range texts.Keys() {
		d.T[k] = texts.T(k, lang)
	}
	for _, item := range services.Items() {
		d.Services = append(d.Services, serviceView{
			ID:          item.ID,
			Icon:        item.Icon,
			Title:       item.Title.Get(lang),
			Description: item.Description.Get(lang),
			Details:     item.Details.Get(lang),
			Active:      item.ID == m.ActiveTab,
		})
	}
	for _, msg := range m.Messages {
		if msg.Role == models.User {
			d.Messages = append(d.Messages, messageView{User: true, Text: msg.Text})
			continue
		}
		d.Messages = append(d.Messages, messageView{Text: msg.Text, HTML: renderReply(msg.Text)})
	}
	if len(m.Messages) == 0 {
		for i, s := range update.Suggestions {
			d.Suggestions = append(d.Suggestions, suggestionView{N: i + 1, Label: texts.T(s.LabelKey, lang)})
		}
	}
	return d
}

// renderReply converts an assistant reply from markdown to sanitised HTML.
// Text that fails to convert is shown escaped.
func renderReply(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(strings.TrimSpace(replyPolicy.Sanitize(buf.String())))
}
