//go:build unit

package push

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redis/go-redis/v9"
)

func TestRedisSourceConsume(t *testing.T) {
	newSource := func(out *bytes.Buffer) *RedisSource {
		return NewRedisSource("localhost:0", "comments.count", slog.New(slog.NewTextHandler(out, nil)))
	}

	t.Run("dispatches decoded events and skips malformed payloads", func(t *testing.T) {
		var logs bytes.Buffer
		src := newSource(&logs)

		ch := make(chan *redis.Message, 3)
		ch <- &redis.Message{Payload: `{"productId":"p1","count":4}`}
		ch <- &redis.Message{Payload: `not json`}
		ch <- &redis.Message{Payload: `{"productId":"p1","count":5}`}
		close(ch)

		var got []CountEvent
		src.consume(context.Background(), ch, func(_ context.Context, ev CountEvent) {
			got = append(got, ev)
		})

		require.Len(t, got, 2)
		assert.Equal(t, CountEvent{ProductID: "p1", Count: 4}, got[0])
		assert.Equal(t, CountEvent{ProductID: "p1", Count: 5}, got[1])
		assert.Contains(t, logs.String(), "dropping malformed count event")
	})

	t.Run("a closed channel ends the loop with a warning", func(t *testing.T) {
		var logs bytes.Buffer
		src := newSource(&logs)

		ch := make(chan *redis.Message)
		close(ch)

		done := make(chan struct{})
		go func() {
			src.consume(context.Background(), ch, func(context.Context, CountEvent) {})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("consume did not return after the channel closed")
		}
		assert.Contains(t, logs.String(), "push channel closed")
	})

	t.Run("context cancellation ends the loop without a warning", func(t *testing.T) {
		var logs bytes.Buffer
		src := newSource(&logs)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan struct{})
		go func() {
			src.consume(ctx, make(chan *redis.Message), func(context.Context, CountEvent) {})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("consume did not return after cancellation")
		}
		assert.NotContains(t, logs.String(), "push channel closed")
	})
}
