package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

var (
	ErrPublisherClosed = errs.New("change feed publisher is closed")
	ErrNoBrokers       = errs.New("at least one kafka broker is required")
	ErrNoTopic         = errs.New("kafka topic is required")
)

// Publisher sends change events to the feed.
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	return newKafkaPublisher(newWriter(cfg.Brokers, cfg.Topic, cfg.MaxRetries)), nil
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e event.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish change event "+e.ID.String())
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func newWriter(brokers []string, topic string, maxAttempts int) *kafka.Writer {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  maxAttempts,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer", "topic", topic, "detail", fmt.Sprintf(msg, args...))
		}),
	}
}
