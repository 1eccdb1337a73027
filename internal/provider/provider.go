// Package provider adapts remote text-generation services to a single
// Backend interface.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnavailable marks every failure to obtain a reply from a backend.
var ErrUnavailable = errors.New("chat backend unavailable")

const (
	Gemini = "gemini"
	OpenAI = "openai"
)

// Request is one single-shot generation call.
type Request struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// Backend generates text for a request. An empty string with a nil error
// means the service answered without text.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Options selects and configures a backend.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// New builds the backend named by opts.Provider. A missing API key or a
// client that cannot be built yields a backend whose every call fails, so
// the page keeps working without a consultant.
func New(ctx context.Context, opts Options, log *slog.Logger) Backend {
	log = log.With("component", "provider", "provider", opts.Provider)
	if opts.APIKey == "" {
		log.Warn("no API key configured, consultant replies will fall back")
		return Unavailable{Err: fmt.Errorf("%w: missing API key", ErrUnavailable)}
	}

	var (
		b   Backend
		err error
	)
	switch opts.Provider {
	case Gemini, "":
		b, err = NewGemini(ctx, opts)
	case OpenAI:
		b, err = NewOpenAI(opts), nil
	default:
		err = fmt.Errorf("unknown provider %q", opts.Provider)
	}
	if err != nil {
		log.Error("failed to build backend", "error", err)
		return Unavailable{Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	log.Info("backend initialized", "model", opts.Model)
	return b
}

// Unavailable is a backend that always fails with Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context, Request) (string, error) {
	return "", u.Err
}
