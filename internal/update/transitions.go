// Package update holds the named state transitions of the landing page and
// the Bubble Tea handlers built on top of them.
package update

import (
	"strings"
	"unicode/utf8"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
)

// Ask is a chat submission handed to the consultant.
type Ask struct {
	Prompt   string
	Language i18n.Language
}

// Suggestion is a quick prompt offered while the transcript is empty.
type Suggestion struct {
	LabelKey  string
	PromptKey string
}

// Suggestions are offered in this order.
var Suggestions = []Suggestion{
	{LabelKey: "suggestionProfitsLabel", PromptKey: "suggestionProfitsPrompt"},
	{LabelKey: "suggestionCallCenterLabel", PromptKey: "suggestionCallCenterPrompt"},
}

// ToggleLanguage flips the language and keeps the document attributes in step.
func ToggleLanguage(m *models.AppModel) {
	SetLanguage(m, m.Language.Toggle())
}

// SetLanguage switches to lang.
func SetLanguage(m *models.AppModel, lang i18n.Language) {
	m.Language = lang
	m.Document = models.Document{Dir: lang.Dir(), Lang: lang}
}

func ToggleMenu(m *models.AppModel) { m.MenuOpen = !m.MenuOpen }

func CloseMenu(m *models.AppModel) { m.MenuOpen = false }

// SelectService expands the panel for id, or collapses it when it is already
// the active one.
func SelectService(m *models.AppModel, id string) {
	if m.ActiveTab == id {
		m.ActiveTab = ""
		return
	}
	m.ActiveTab = id
}

// MoveCursor moves keyboard focus across n services, wrapping at both ends.
func MoveCursor(m *models.AppModel, delta, n int) {
	if n <= 0 {
		m.Cursor = 0
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// SelectFocused toggles the service under the cursor.
func SelectFocused(m *models.AppModel, services *catalog.Catalog) {
	if services == nil || services.Len() == 0 {
		return
	}
	MoveCursor(m, 0, services.Len())
	SelectService(m, services.At(m.Cursor).ID)
}

// ScrollBy moves the terminal viewport; it never goes above the top.
func ScrollBy(m *models.AppModel, delta int) {
	m.Scroll += delta
	if m.Scroll < 0 {
		m.Scroll = 0
	}
}

// ClampScroll keeps the viewport offset within [0, limit].
func ClampScroll(m *models.AppModel, limit int) {
	m.Scroll = min(max(m.Scroll, 0), max(limit, 0))
}

// OpenChat shows the chat panel and marks pending replies as read.
func OpenChat(m *models.AppModel) {
	m.ChatOpen = true
	m.Unread = 0
}

func CloseChat(m *models.AppModel) { m.ChatOpen = false }

func SetInput(m *models.AppModel, text string) { m.Input = text }

func AppendInput(m *models.AppModel, text string) { m.Input += text }

// Backspace removes the last rune of the input.
func Backspace(m *models.AppModel) {
	if m.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(m.Input)
	m.Input = m.Input[:len(m.Input)-size]
}

// UseSuggestion fills the input with suggestion i. Suggestions are only
// offered before the first message.
func UseSuggestion(m *models.AppModel, texts *i18n.Table, i int) bool {
	if len(m.Messages) > 0 || i < 0 || i >= len(Suggestions) {
		return false
	}
	m.Input = texts.T(Suggestions[i].PromptKey, m.Language)
	return true
}

// Submit moves an idle chat to awaiting-response. It is refused for blank
// input and while a reply is pending. On success the trimmed input is in the
// transcript and the input buffer is already empty.
func Submit(m *models.AppModel) (Ask, bool) {
	prompt := strings.TrimSpace(m.Input)
	if prompt == "" || m.Loading {
		return Ask{}, false
	}
	m.Messages = append(m.Messages, models.Message{Role: models.User, Text: prompt})
	m.Input = ""
	m.Loading = true
	return Ask{Prompt: prompt, Language: m.Language}, true
}

// ReceiveReply returns the chat to idle with the consultant's answer appended.
// A reply landing while the panel is closed is kept and counted as unread.
func ReceiveReply(m *models.AppModel, text string) {
	m.Messages = append(m.Messages, models.Message{Role: models.Assistant, Text: text})
	m.Loading = false
	m.LoadingDots = 0
	if !m.ChatOpen {
		m.Unread++
	}
}
