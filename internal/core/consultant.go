package core

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/provider"
)

// DefaultTemperature is the sampling temperature of every consultant call.
const DefaultTemperature float32 = 0.7

// Replier answers a visitor's question in the given language. It never
// fails: problems surface as a localized apology.
type Replier interface {
	Reply(ctx context.Context, message string, lang i18n.Language) string
}

// ChatClient is the Replier backed by a text-generation service.
type ChatClient struct {
	backend      provider.Backend
	texts        *i18n.Table
	instructions SystemInstructions
	temperature  float32
	timeout      time.Duration
	log          *slog.Logger
}

// ClientOptions tunes a ChatClient.
type ClientOptions struct {
	Temperature *float32      // nil selects DefaultTemperature; zero is honoured
	Timeout     time.Duration // zero means the call is not bounded
}

func NewChatClient(backend provider.Backend, texts *i18n.Table, services *catalog.Catalog, opts ClientOptions, log *slog.Logger) *ChatClient {
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	return &ChatClient{
		backend:      backend,
		texts:        texts,
		instructions: BuildInstructions(texts, services),
		temperature:  temperature,
		timeout:      opts.Timeout,
		log:          log.With("component", "chat_client"),
	}
}

// Reply issues exactly one backend call. A backend error maps to the
// "unavailable" text and an empty answer to the "empty" text.
func (c *ChatClient) Reply(ctx context.Context, message string, lang i18n.Language) string {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.backend.Generate(ctx, provider.Request{
		Prompt:            message,
		SystemInstruction: c.instructions.For(lang),
		Temperature:       c.temperature,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "consultant backend failed", "error", err, "lang", lang, "duration", time.Since(start))
		return c.texts.T("replyUnavailable", lang)
	}
	if strings.TrimSpace(text) == "" {
		c.log.WarnContext(ctx, "consultant backend returned no text", "lang", lang)
		return c.texts.T("replyEmpty", lang)
	}
	c.log.DebugContext(ctx, "consultant replied", "lang", lang, "chars", len(text), "duration", time.Since(start))
	return text
}
