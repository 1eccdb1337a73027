package update

import "github.com/charmbracelet/bubbles/key"

// PageKeys are active while the chat panel is closed.
type PageKeys struct {
	Language key.Binding
	Menu     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Select   key.Binding
	Chat     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// ChatKeys are active while the chat panel is open.
type ChatKeys struct {
	Submit      key.Binding
	Suggestion1 key.Binding
	Suggestion2 key.Binding
	Language    key.Binding
	Close       key.Binding
	Backspace   key.Binding
	Quit        key.Binding
}

var Page = PageKeys{
	Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
	Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev service")),
	Next:     key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next service")),
	Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
	Chat:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "consultant")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var Chat = ChatKeys{
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Suggestion1: key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "suggestion")),
	Suggestion2: key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "suggestion")),
	Language:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
	Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Backspace:   key.NewBinding(key.WithKeys("backspace")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k PageKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Language, k.Menu, k.Prev, k.Next, k.Select, k.Chat, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k PageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down}}
}

// ShortHelp implements help.KeyMap.
func (k ChatKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Suggestion1, k.Suggestion2, k.Language, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ChatKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
