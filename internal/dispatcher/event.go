package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayan-consulting/kayan/internal/eventbus"
	"github.com/kayan-consulting/kayan/internal/update"
)

// EventDispatcher turns core events into Bubble Tea messages.
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ListenForCoreEvents waits for the next core event. The returned command
// must be re-issued after every delivered message. It yields nil once the
// bus is closed or the dispatcher stopped.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case ev, ok := <-ed.eventBus.CoreToUI():
			if !ok {
				return nil
			}
			return update.CoreEventMsg{Event: ev}
		}
	}
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) EventBus() *eventbus.EventBus {
	return ed.eventBus
}
