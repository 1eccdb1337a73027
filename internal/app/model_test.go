package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayan-consulting/kayan/internal/config"
	"github.com/kayan-consulting/kayan/internal/dispatcher"
	"github.com/kayan-consulting/kayan/internal/eventbus"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/update"
	"github.com/kayan-consulting/kayan/ui"
)

func newTestModel(t *testing.T, bus *eventbus.EventBus) *AppModel {
	t.Helper()
	content, err := LoadContent()
	require.NoError(t, err)
	m := models.NewAppModel(i18n.English)
	m.Width = 160
	return &AppModel{
		appModel:   m,
		dispatcher: dispatcher.NewEventDispatcher(bus),
		env:        update.Env{Bus: bus, Texts: content.Texts, Services: content.Services},
		page:       ui.Page{Texts: content.Texts, Services: content.Services, Phone: "123"},
	}
}

func TestModelAskAndReply(t *testing.T) {
	bus := eventbus.NewEventBus()
	defer bus.Close()
	m := newTestModel(t, bus)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	for _, r := range "hi" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.appModel.Loading)

	select {
	case ev := <-bus.UIToCore():
		assert.Equal(t, eventbus.AskEvent{Prompt: "hi", Language: i18n.English}, ev)
	case <-time.After(time.Second):
		t.Fatal("ask not sent")
	}

	require.NoError(t, bus.SendToUI(eventbus.ReplyEvent{Text: "Hello from Kayan", Language: i18n.English}))
	msg := m.dispatcher.ListenForCoreEvents()()
	_, cmd = m.Update(msg)
	assert.NotNil(t, cmd)
	assert.False(t, m.appModel.Loading)
	assert.Contains(t, m.View(), "Hello from Kayan")
}

func TestScrollStopsAtBottom(t *testing.T) {
	bus := eventbus.NewEventBus()
	defer bus.Close()
	m := newTestModel(t, bus)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	for i := 0; i < 50; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	limit := m.page.MaxScroll(m.appModel)
	require.Positive(t, limit)
	assert.Equal(t, limit, m.appModel.Scroll)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, limit-1, m.appModel.Scroll)
}

func TestNewApplicationWithoutKey(t *testing.T) {
	t.Setenv("KAYAN_API_KEY", "")
	t.Setenv("API_KEY", "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.Equal(t, i18n.Arabic, application.model.appModel.Language)
	application.Stop()
	assert.FileExists(t, filepath.Join(filepath.Dir(cfg.Path()), "kayan.log"))
}
