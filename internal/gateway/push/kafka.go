package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"
)

// KafkaSource consumes count events from a topic, for deployments where the
// comment service publishes through a broker instead of Redis. Delivery is
// at-least-once; the consumer's max-based reconciliation absorbs replays.
type KafkaSource struct {
	reader *kafka.Reader
	log    *slog.Logger

	mu      sync.Mutex
	started bool
}

func NewKafkaSource(brokers []string, group, topic string, log *slog.Logger) *KafkaSource {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  group,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &KafkaSource{reader: r, log: log}
}

func (s *KafkaSource) Start(ctx context.Context, h Handler) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer func() { _ = s.reader.Close() }()
		for {
			m, err := s.reader.ReadMessage(ctx)
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
				}
				s.log.Warn("push channel read failed", "transport", "kafka", "error", err)
				return
			}
			var ev CountEvent
			if err := json.Unmarshal(m.Value, &ev); err != nil {
				s.log.Warn("dropping malformed count event", "error", err)
				continue
			}
			h(ctx, ev)
		}
	}()

	s.log.Info("push channel connected", "transport", "kafka", "topic", s.reader.Config().Topic)
	return nil
}
