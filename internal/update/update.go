package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayan-consulting/kayan/internal/models"
)

// HandleUpdate applies one Bubble Tea message to the view state.
func HandleUpdate(m *models.AppModel, msg tea.Msg, env Env) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg, env)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(m, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(m)
	case CoreEventMsg:
		return HandleCoreEvent(m, msg)
	}
	return nil
}
