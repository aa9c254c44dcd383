package broadcast

import (
	"context"
	"sync"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// Publisher is anything events can be handed to.
type Publisher interface {
	Publish(topic string, event domain.Event)
}

type outboxKey struct{}

type pending struct {
	topic string
	event domain.Event
}

// Outbox holds events back until Flush. Services open one around a
// transaction so subscribers never hear about writes that were rolled back.
type Outbox struct {
	mu      sync.Mutex
	target  Publisher
	pending []pending
}

// WithOutbox returns a context carrying a fresh Outbox that flushes into target.
func WithOutbox(ctx context.Context, target Publisher) (context.Context, *Outbox) {
	o := &Outbox{target: target}
	return context.WithValue(ctx, outboxKey{}, o), o
}

// FromCtx returns the Outbox stored in ctx, or fallback when there is none.
func FromCtx(ctx context.Context, fallback Publisher) Publisher {
	if o, ok := ctx.Value(outboxKey{}).(*Outbox); ok {
		return o
	}
	return fallback
}

// Publish queues the event.
func (o *Outbox) Publish(topic string, event domain.Event) {
	o.mu.Lock()
	o.pending = append(o.pending, pending{topic: topic, event: event})
	o.mu.Unlock()
}

// Flush hands every queued event to the target in the order it was queued.
func (o *Outbox) Flush() {
	o.mu.Lock()
	queued := o.pending
	o.pending = nil
	o.mu.Unlock()

	for _, p := range queued {
		o.target.Publish(p.topic, p.event)
	}
}

// Discard drops every queued event.
func (o *Outbox) Discard() {
	o.mu.Lock()
	o.pending = nil
	o.mu.Unlock()
}

// Len returns the number of queued events.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}
