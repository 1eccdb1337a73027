package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/eventbus"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
)

// Env carries what the handlers need besides the view state.
type Env struct {
	Bus      *eventbus.EventBus
	Texts    *i18n.Table
	Services *catalog.Catalog
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// HandleKeyMsg routes a key press to the page or chat bindings.
func HandleKeyMsg(m *models.AppModel, msg tea.KeyMsg, env Env) tea.Cmd {
	if m.ChatOpen {
		return handleChatKey(m, msg, env)
	}
	return handlePageKey(m, msg, env)
}

func handlePageKey(m *models.AppModel, msg tea.KeyMsg, env Env) tea.Cmd {
	switch {
	case key.Matches(msg, Page.Quit):
		return tea.Quit
	case key.Matches(msg, Page.Language):
		ToggleLanguage(m)
	case key.Matches(msg, Page.Menu):
		ToggleMenu(m)
	case key.Matches(msg, Page.Prev):
		MoveCursor(m, -1, env.Services.Len())
	case key.Matches(msg, Page.Next):
		MoveCursor(m, 1, env.Services.Len())
	case key.Matches(msg, Page.Select):
		SelectFocused(m, env.Services)
	case key.Matches(msg, Page.Chat):
		CloseMenu(m)
		OpenChat(m)
	case key.Matches(msg, Page.Up):
		ScrollBy(m, -1)
	case key.Matches(msg, Page.Down):
		ScrollBy(m, 1)
	case key.Matches(msg, Page.PageUp):
		ScrollBy(m, -pageStep(m))
	case key.Matches(msg, Page.PageDown):
		ScrollBy(m, pageStep(m))
	}
	return nil
}

func handleChatKey(m *models.AppModel, msg tea.KeyMsg, env Env) tea.Cmd {
	switch {
	case key.Matches(msg, Chat.Quit):
		return tea.Quit
	case key.Matches(msg, Chat.Close):
		CloseChat(m)
	case key.Matches(msg, Chat.Language):
		ToggleLanguage(m)
	case key.Matches(msg, Chat.Suggestion1):
		UseSuggestion(m, env.Texts, 0)
	case key.Matches(msg, Chat.Suggestion2):
		UseSuggestion(m, env.Texts, 1)
	case key.Matches(msg, Chat.Backspace):
		Backspace(m)
	case key.Matches(msg, Chat.Submit):
		return submit(m, env)
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				AppendInput(m, string(msg.Runes))
			}
		case tea.KeySpace:
			AppendInput(m, " ")
		}
	}
	return nil
}

// submit hands the ask to the core. If the bus refuses it the chat still
// returns to idle with the unavailable text, as a failed backend call would.
func submit(m *models.AppModel, env Env) tea.Cmd {
	ask, ok := Submit(m)
	if !ok {
		return nil
	}
	if err := env.Bus.SendToCore(eventbus.AskEvent{Prompt: ask.Prompt, Language: ask.Language}); err != nil {
		ReceiveReply(m, env.Texts.T("replyUnavailable", ask.Language))
		m.Status = err.Error()
		return nil
	}
	return TickCmd()
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(m *models.AppModel, msg CoreEventMsg) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.ReplyEvent:
		ReceiveReply(m, event.Text)
	}
	return nil
}

func HandleWindowSizeMsg(m *models.AppModel, msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
}

// HandleTickMsg animates the loading dots; ticking stops once idle.
func HandleTickMsg(m *models.AppModel) tea.Cmd {
	if !m.Loading {
		return nil
	}
	m.LoadingDots = (m.LoadingDots + 1) % 4
	return TickCmd()
}

func pageStep(m *models.AppModel) int {
	if m.Height > 4 {
		return m.Height - 2
	}
	return 10
}
