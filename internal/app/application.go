package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/config"
	"github.com/kayan-consulting/kayan/internal/core"
	"github.com/kayan-consulting/kayan/internal/dispatcher"
	"github.com/kayan-consulting/kayan/internal/eventbus"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/logging"
	"github.com/kayan-consulting/kayan/internal/models"
	"github.com/kayan-consulting/kayan/internal/provider"
	"github.com/kayan-consulting/kayan/internal/update"
	"github.com/kayan-consulting/kayan/ui"
)

// Content is the static copy shared by every renderer.
type Content struct {
	Texts    *i18n.Table
	Services *catalog.Catalog
}

// LoadContent loads and validates the embedded translation table and
// service catalog.
func LoadContent() (Content, error) {
	texts, err := i18n.Default()
	if err != nil {
		return Content{}, fmt.Errorf("failed to load translations: %w", err)
	}
	services, err := catalog.Default()
	if err != nil {
		return Content{}, fmt.Errorf("failed to load service catalog: %w", err)
	}
	return Content{Texts: texts, Services: services}, nil
}

// NewReplier builds the consultant from configuration. A missing API key
// still yields a working Replier that apologises.
func NewReplier(ctx context.Context, cfg *config.Config, content Content, log *slog.Logger) *core.ChatClient {
	backend := provider.New(ctx, provider.Options{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	}, log)
	return core.NewChatClient(backend, content.Texts, content.Services, core.ClientOptions{
		Temperature: &cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, log)
}

// Application manages the terminal application lifecycle
type Application struct {
	config     *config.Config
	log        *slog.Logger
	logFile    io.Closer
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ChatService
	model      *AppModel
}

// NewApplication wires the terminal application. Logs go to cfg.Log.File,
// or kayan.log next to the config file, since the screen belongs to the UI.
func NewApplication(cfg *config.Config) (*Application, error) {
	content, err := LoadContent()
	if err != nil {
		return nil, err
	}

	logPath := cfg.Log.File
	if logPath == "" && cfg.Path() != "" {
		logPath = filepath.Join(filepath.Dir(cfg.Path()), "kayan.log")
	}
	log := logging.Discard()
	var logFile io.Closer
	if logPath != "" {
		f, err := logging.OpenFile(logPath)
		if err != nil {
			return nil, err
		}
		logFile = f
		log = logging.New(cfg.Log.Level, cfg.Log.Format, f)
	}

	lang, err := i18n.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Warn("event bus error", "operation", e.Operation, "error", e.Err)
	})
	disp := dispatcher.NewEventDispatcher(eb)
	replier := NewReplier(context.Background(), cfg, content, log)
	chatService := core.NewChatService(replier, eb, log)

	model := &AppModel{
		appModel:   models.NewAppModel(lang),
		dispatcher: disp,
		env: update.Env{
			Bus:      eb,
			Texts:    content.Texts,
			Services: content.Services,
		},
		page: ui.Page{
			Texts:    content.Texts,
			Services: content.Services,
			Phone:    cfg.Brand.Phone,
			Now:      time.Now,
		},
	}

	return &Application{
		config:     cfg,
		log:        log,
		logFile:    logFile,
		eventBus:   eb,
		dispatcher: disp,
		service:    chatService,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()
	app.log.Info("terminal page started", "language", app.model.appModel.Language)

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
	app.log.Info("terminal page stopped")
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}
