package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 16

// RedisBroker fans notifications out over a Redis pub/sub channel so every
// replica's SSE subscribers see them.
type RedisBroker struct {
	raw     *redis.Client
	channel string
	log     *logger.Logger
}

var _ interfaces.INotificationBroker = (*RedisBroker)(nil)

func NewRedisBroker(raw *redis.Client, channel string, log *logger.Logger) *RedisBroker {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisBroker{raw: raw, channel: channel, log: log}
}

func (b *RedisBroker) Publish(ctx context.Context, n entities.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := b.raw.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error) {
	ps := b.raw.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", b.channel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan entities.Notification, subscriberBuffer)
	msgs := ps.Channel()

	go func() {
		defer close(out)
		defer ps.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var n entities.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
					b.log.Error(ctx, "[cache][broker] dropping malformed notification", err)
					continue
				}
				select {
				case out <- n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, cancel, nil
}

// LocalBroker delivers notifications to subscribers of this process only.
// Slow subscribers miss messages rather than block publishers.
type LocalBroker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan entities.Notification
}

var _ interfaces.INotificationBroker = (*LocalBroker)(nil)

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{subs: make(map[int]chan entities.Notification)}
}

func (b *LocalBroker) Publish(_ context.Context, n entities.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

func (b *LocalBroker) Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan entities.Notification, subscriberBuffer)
	b.subs[id] = ch
	b.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
			close(done)
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return ch, cancel, nil
}
