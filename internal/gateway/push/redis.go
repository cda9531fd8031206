package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisSource receives count events over a single multiplexed pub/sub
// channel. All products share one subscription; filtering happens in the
// consumer.
type RedisSource struct {
	client  *redis.Client
	channel string
	log     *slog.Logger

	mu      sync.Mutex
	started bool
}

func NewRedisSource(addr, channel string, log *slog.Logger) *RedisSource {
	return &RedisSource{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
		log:     log,
	}
}

func (s *RedisSource) Start(ctx context.Context, h Handler) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	sub := s.client.Subscribe(ctx, s.channel)
	// Receive the subscription confirmation up front so a bad address fails
	// Start instead of the background loop.
	if _, err := sub.Receive(ctx); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return err
	}

	go func() {
		defer func() { _ = sub.Close() }()
		s.consume(ctx, sub.Channel(), h)
	}()

	s.log.Info("push channel connected", "transport", "redis", "channel", s.channel)
	return nil
}

// consume dispatches messages until ctx is cancelled or the pub/sub channel
// closes. A closed channel means the connection was lost and no further
// events will arrive.
func (s *RedisSource) consume(ctx context.Context, ch <-chan *redis.Message, h Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				s.log.Warn("push channel closed", "transport", "redis", "channel", s.channel)
				return
			}
			var ev CountEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				s.log.Warn("dropping malformed count event", "error", err)
				continue
			}
			h(ctx, ev)
		}
	}
}
