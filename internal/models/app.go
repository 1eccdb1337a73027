package models

import "github.com/kayan-consulting/kayan/internal/i18n"

// Document mirrors the language and direction attributes of the rendered page.
type Document struct {
	Dir  i18n.Direction
	Lang i18n.Language
}

// AppModel is the view state of one page. It is owned by a single renderer
// and only changed through the transition functions in package update.
type AppModel struct {
	Language  i18n.Language
	Document  Document
	MenuOpen  bool
	ActiveTab string // empty when every detail panel is collapsed
	ChatOpen  bool
	Messages  []Message
	Input     string
	Loading   bool
	Unread    int // replies appended while the chat panel was closed

	// Terminal only.
	Cursor      int
	Scroll      int
	Width       int
	Height      int
	LoadingDots int
	Status      string
}

// NewAppModel returns the initial view state for lang.
func NewAppModel(lang i18n.Language) AppModel {
	return AppModel{
		Language: lang,
		Document: Document{Dir: lang.Dir(), Lang: lang},
		Messages: make([]Message, 0),
	}
}

// Idle reports whether no chat reply is pending.
func (m AppModel) Idle() bool { return !m.Loading }
