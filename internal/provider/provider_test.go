package provider

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewWithoutKeyIsUnavailable(t *testing.T) {
	t.Parallel()

	b := New(context.Background(), Options{Provider: Gemini}, discardLogger())
	_, err := b.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewUnknownProviderIsUnavailable(t *testing.T) {
	t.Parallel()

	b := New(context.Background(), Options{Provider: "carrier-pigeon", APIKey: "k"}, discardLogger())
	_, err := b.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestOpenAIGenerate(t *testing.T) {
	t.Parallel()

	var got struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"نعم"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	b := New(context.Background(), Options{Provider: OpenAI, APIKey: "test-key", BaseURL: srv.URL}, discardLogger())
	text, err := b.Generate(context.Background(), Request{
		Prompt:            "هل لديكم خدمة كول سنتر؟",
		SystemInstruction: "be brief",
		Temperature:       0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "نعم", text)

	assert.Equal(t, DefaultOpenAIModel, got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be brief", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestOpenAIServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota","type":"insufficient_quota"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b := NewOpenAI(Options{APIKey: "k", BaseURL: srv.URL})
	_, err := b.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAINoChoicesIsEmptyText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c2","object":"chat.completion","choices":[]}`)
	}))
	defer srv.Close()

	b := NewOpenAI(Options{APIKey: "k", BaseURL: srv.URL})
	text, err := b.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiGenerate(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, DefaultGeminiModel+":generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Yes, we do."}]},"finishReason":"STOP"}]}`)
	}))
	defer srv.Close()

	b, err := NewGemini(context.Background(), Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := b.Generate(context.Background(), Request{
		Prompt:            "Do you have a call center service?",
		SystemInstruction: "You are a consultant.",
		Temperature:       0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Yes, we do.", text)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "You are a consultant.")
	assert.Contains(t, string(raw), "Do you have a call center service?")
	assert.Contains(t, string(raw), `"temperature":0.7`)
}

func TestGeminiServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
	}))
	defer srv.Close()

	b, err := NewGemini(context.Background(), Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = b.Generate(context.Background(), Request{Prompt: "hi", Temperature: 0.7})
	assert.ErrorIs(t, err, ErrUnavailable)
}
