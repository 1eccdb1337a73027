package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kayan-consulting/kayan/internal/i18n"
)

var (
	ErrBusFull   = errors.New("event bus channel is full")
	ErrBusClosed = errors.New("event bus is closed")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// AskEvent - UI asks the consultant a question
type AskEvent struct {
	Prompt   string
	Language i18n.Language
}

func (e AskEvent) UIEvent() {}

// ReplyEvent - Core delivers the consultant's answer
type ReplyEvent struct {
	Text     string
	Language i18n.Language
}

func (e ReplyEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error { return e.Err }

// EventBus handles communication between UI and Core
type EventBus struct {
	mu            sync.RWMutex
	closed        bool
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(16)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, size),
		coreToUI: make(chan CoreEvent, size),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}
	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return eb.reportError("SendToCore", ErrBusClosed)
	}

	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return eb.reportError("SendToCore", ErrBusFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return eb.reportError("SendToUI", ErrBusClosed)
	}

	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return eb.reportError("SendToUI", ErrBusFull)
	}
}

// DeliverToUI sends event, waiting for room in the channel until ctx is done.
// Close blocks while a delivery is waiting, so cancel ctx before closing.
func (eb *EventBus) DeliverToUI(ctx context.Context, event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return eb.reportError("DeliverToUI", ErrBusClosed)
	}

	select {
	case eb.coreToUI <- event:
		return nil
	case <-ctx.Done():
		return eb.reportError("DeliverToUI", ctx.Err())
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// Close closes both channels. Later sends fail with ErrBusClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
