package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kayan-consulting/kayan/internal/eventbus"
)

// ChatService answers AskEvents arriving from the UI. Every question runs in
// its own goroutine and its answer is posted back as a ReplyEvent.
type ChatService struct {
	replier  Replier
	eventBus *eventbus.EventBus
	log      *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewChatService(replier Replier, eb *eventbus.EventBus, log *slog.Logger) *ChatService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChatService{
		replier:  replier,
		eventBus: eb,
		log:      log.With("component", "chat_service"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the event loop in a goroutine.
func (cs *ChatService) Start() {
	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		cs.eventLoop()
	}()
}

// Stop cancels in-flight requests and waits for the loop and all pending
// replies to finish. Call it before closing the event bus.
func (cs *ChatService) Stop() {
	cs.cancel()
	cs.wg.Wait()
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.AskEvent:
		cs.wg.Add(1)
		go func() {
			defer cs.wg.Done()
			cs.answer(e)
		}()
	default:
		cs.log.Warn("ignoring unknown UI event", "event", e)
	}
}

func (cs *ChatService) answer(e eventbus.AskEvent) {
	text := cs.replier.Reply(cs.ctx, e.Prompt, e.Language)
	if cs.ctx.Err() != nil {
		return
	}
	// The UI stays loading until this reply arrives.
	if err := cs.eventBus.DeliverToUI(cs.ctx, eventbus.ReplyEvent{Text: text, Language: e.Language}); err != nil {
		cs.log.Warn("reply not delivered", "error", err)
	}
}
