package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// DefaultQueueSize bounds the number of events waiting to be written to Redis.
const DefaultQueueSize = 1024

type localPublisher interface {
	Publish(topic string, event domain.Event)
}

type envelope struct {
	Origin string       `json:"origin"`
	Topic  string       `json:"topic"`
	Event  domain.Event `json:"event"`
}

// Relay is a broadcast publisher that delivers every event to the local hub
// and forwards it to Redis channel <prefix><topic>. Events received from
// other instances are republished locally. Publish never blocks: when the
// outbound queue is full the remote copy is dropped.
type Relay struct {
	log     *slog.Logger
	client  *goRedis.Client
	local   localPublisher
	prefix  string
	origin  string
	queue   chan envelope
	dropped atomic.Uint64
}

// NewRelay creates a relay. Call Run to start moving events.
func NewRelay(log *slog.Logger, client *goRedis.Client, local localPublisher, prefix string, queueSize int) *Relay {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Relay{
		log:    log.With("component", "redis_relay"),
		client: client,
		local:  local,
		prefix: prefix,
		origin: uuid.NewString(),
		queue:  make(chan envelope, queueSize),
	}
}

// Publish delivers event locally and queues it for other instances.
func (r *Relay) Publish(topic string, event domain.Event) {
	r.local.Publish(topic, event)

	select {
	case r.queue <- envelope{Origin: r.origin, Topic: topic, Event: event}:
	default:
		r.dropped.Add(1)
		r.log.Warn("relay queue full, event not forwarded",
			slog.String("topic", topic),
			slog.String("action", string(event.Action)),
		)
	}
}

// Dropped returns the number of events that were not forwarded to Redis.
func (r *Relay) Dropped() uint64 {
	return r.dropped.Load()
}

// Run subscribes to the relay channels and drains the outbound queue until
// ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.PSubscribe(ctx, r.prefix+"*")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis psubscribe: %w", err)
	}
	r.log.InfoContext(ctx, "relay started", slog.String("pattern", r.prefix+"*"))

	inbound := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-r.queue:
			r.forward(ctx, env)
		case msg, ok := <-inbound:
			if !ok {
				return errors.New("redis subscription closed")
			}
			r.handleMessage(msg.Channel, msg.Payload)
		}
	}
}

func (r *Relay) forward(ctx context.Context, env envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		r.log.ErrorContext(ctx, "encode relay event", slog.String("error", err.Error()))
		return
	}
	if err := r.client.Publish(ctx, r.prefix+env.Topic, payload).Err(); err != nil {
		r.log.WarnContext(ctx, "redis publish failed",
			slog.String("topic", env.Topic),
			slog.String("error", err.Error()),
		)
	}
}

// handleMessage republishes an event that came from another instance.
func (r *Relay) handleMessage(channel, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.log.Warn("malformed relay payload", slog.String("channel", channel), slog.String("error", err.Error()))
		return
	}
	if env.Origin == r.origin {
		return
	}

	topic := strings.TrimPrefix(channel, r.prefix)
	if topic != env.Topic || !domain.ValidTopic(topic) {
		r.log.Warn("relay topic mismatch", slog.String("channel", channel), slog.String("topic", env.Topic))
		return
	}

	r.local.Publish(topic, env.Event)
}
