// Package pubsub fans lifecycle events out to live subscribers. Topics are
// opaque strings and matched exactly; there is no backlog, a subscriber only
// sees events published after it registered.
package pubsub

import (
	"sync"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
)

const defaultBuffer = 16

type Option func(*Bus)

// WithBuffer sets the per-subscriber channel capacity.
func WithBuffer(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.buffer = n
		}
	}
}

// Bus is a topic-keyed publish/subscribe fan-out.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	buffer int
	logger *zap.Logger
}

func New(logger *zap.Logger, opts ...Option) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}

	ans := Bus{
		subs:   make(map[string]map[*Subscription]struct{}),
		buffer: defaultBuffer,
		logger: logger,
	}

	for _, opt := range opts {
		opt(&ans)
	}

	return &ans
}

// Subscribe registers a new delivery channel under topic.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		bus:   b,
		topic: topic,
		ch:    make(chan entities.Event, b.buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*Subscription]struct{})
	}

	b.subs[topic][sub] = struct{}{}

	return sub
}

// Publish delivers ev to every subscriber currently registered under topic.
// Delivery is best effort: a subscriber whose buffer is full has the event
// dropped rather than stalling the publisher.
func (b *Bus) Publish(topic string, ev entities.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[topic] {
		select {
		case sub.ch <- ev:
		default:
			b.logger.Warn("subscriber buffer full, dropping event",
				zap.String("topic", topic),
				zap.String("mutation", string(ev.Kind)),
			)
		}
	}
}

// Subscribers reports how many channels are registered under topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[topic])
}

// Subscription is one registered delivery channel.
type Subscription struct {
	bus   *Bus
	topic string
	ch    chan entities.Event
	once  sync.Once
}

// C is the delivery channel. It is never closed; callers should stop reading
// after Unsubscribe.
func (s *Subscription) C() <-chan entities.Event {
	return s.ch
}

// Topic returns the topic this subscription is registered under.
func (s *Subscription) Topic() string {
	return s.topic
}

// Unsubscribe deregisters the channel. It is idempotent and safe to call
// concurrently with an in-flight Publish; the subscriber may or may not
// receive that last event.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()

		delete(s.bus.subs[s.topic], s)

		if len(s.bus.subs[s.topic]) == 0 {
			delete(s.bus.subs, s.topic)
		}
	})
}
