package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayan-consulting/kayan/internal/dispatcher"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
	"github.com/kayan-consulting/kayan/ui"
)

// AppModel adapts the view state to tea.Model.
type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	env        update.Env
	page       ui.Page
}

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Core events re-arm the listener.
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		update.ClampScroll(&m.appModel, m.page.MaxScroll(m.appModel))
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}
	cmd := update.HandleUpdate(&m.appModel, msg, m.env)
	update.ClampScroll(&m.appModel, m.page.MaxScroll(m.appModel))
	return m, cmd
}

func (m *AppModel) View() string {
	return m.page.Render(m.appModel)
}
