// Package broadcast fans task events out to in-process topic subscribers.
//
// Delivery is at-most-once. Every subscriber owns a bounded buffer; when it is
// full the event is dropped for that subscriber only, so a slow consumer can
// never stall a publisher.
package broadcast

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// DefaultBufferSize is used when NewHub is given a non-positive size.
const DefaultBufferSize = 64

// Hub is a topic-keyed publish/subscribe registry. Safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[uint64]*Subscription
	closed bool

	nextID  atomic.Uint64
	dropped atomic.Uint64

	buffer int
	log    *slog.Logger
}

// NewHub creates a Hub whose subscribers buffer up to buffer events each.
func NewHub(log *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Hub{
		topics: make(map[string]map[uint64]*Subscription),
		buffer: buffer,
		log:    log.With("component", "broadcast"),
	}
}

// Subscription is a live registration on one topic.
type Subscription struct {
	id     uint64
	topic  string
	events chan domain.Event
	hub    *Hub
	once   sync.Once
}

// Events returns the channel events are delivered on. It is closed when the
// subscription or the hub is closed.
func (s *Subscription) Events() <-chan domain.Event {
	return s.events
}

// Topic returns the topic the subscription listens on.
func (s *Subscription) Topic() string {
	return s.topic
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.remove(s)
}

// Subscribe registers a new subscriber on topic. Subscribing to a closed hub
// yields an already-closed subscription.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		id:     h.nextID.Add(1),
		topic:  topic,
		events: make(chan domain.Event, h.buffer),
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.once.Do(func() { close(sub.events) })
		return sub
	}

	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[uint64]*Subscription)
		h.topics[topic] = subs
	}
	subs[sub.id] = sub
	return sub
}

// Publish delivers event to every current subscriber of topic without
// blocking. Publishing to a topic with no subscribers is a no-op.
func (h *Hub) Publish(topic string, event domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, sub := range h.topics[topic] {
		select {
		case sub.events <- event:
		default:
			h.dropped.Add(1)
			h.log.Warn("subscriber buffer full, event dropped",
				slog.String("topic", topic),
				slog.String("action", event.Action.String()),
				slog.Uint64("subscription", sub.id),
			)
		}
	}
}

// Dropped returns how many deliveries were skipped because a buffer was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// SubscriberCount returns the number of live subscriptions on topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close closes every subscription and rejects further publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for topic, subs := range h.topics {
		for _, sub := range subs {
			sub.once.Do(func() { close(sub.events) })
		}
		delete(h.topics, topic)
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[sub.topic]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(h.topics, sub.topic)
		}
	}
	sub.once.Do(func() { close(sub.events) })
}
