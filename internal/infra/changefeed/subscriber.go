package changefeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

var (
	ErrAlreadySubscribed = errs.New("subscriber already has an active subscription")
	ErrNoGroupID         = errs.New("kafka consumer group id is required")
)

const fetchBackoff = time.Second

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Delivery is one change event read from the feed. The offset only advances
// once Ack or Reject is called, so an unacknowledged event is redelivered.
type Delivery struct {
	Event event.Event

	msg kafka.Message
	sub *KafkaSubscriber
}

func (d Delivery) Ack(ctx context.Context) error {
	return d.sub.reader.CommitMessages(ctx, d.msg)
}

// Reject parks the message on the dead-letter topic and then acknowledges it.
func (d Delivery) Reject(ctx context.Context, cause error, attempts int) error {
	if err := d.sub.deadLetter(ctx, d.msg, cause, attempts); err != nil {
		return err
	}
	return d.Ack(ctx)
}

// Subscriber yields change events. Delivery is at least once and events of
// different entities arrive in no particular order.
type Subscriber interface {
	Subscribe(ctx context.Context, types ...event.Type) (<-chan Delivery, error)
	Close() error
}

type KafkaSubscriber struct {
	reader    messageReader
	dlqWriter messageWriter
	topic     string

	mu     sync.Mutex
	active bool
	wg     sync.WaitGroup
}

func NewKafkaSubscriber(cfg config.KafkaConfig) (*KafkaSubscriber, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	if cfg.GroupID == "" {
		return nil, ErrNoGroupID
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: cfg.CommitInterval,
		StartOffset:    kafka.FirstOffset,
		Logger:         kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka reader", "topic", cfg.Topic, "detail", fmt.Sprintf(msg, args...))
		}),
	})

	var dlq messageWriter
	if cfg.DLQTopic != "" {
		dlq = newWriter(cfg.Brokers, cfg.DLQTopic, 3)
	}
	return newKafkaSubscriber(reader, dlq, cfg.Topic), nil
}

func newKafkaSubscriber(r messageReader, dlq messageWriter, topic string) *KafkaSubscriber {
	return &KafkaSubscriber{reader: r, dlqWriter: dlq, topic: topic}
}

// Subscribe streams events whose type is in types; an empty list streams all.
// Other events and undecodable messages are acknowledged without being
// delivered, the latter after a copy goes to the dead-letter topic. The
// channel closes when ctx is done.
func (s *KafkaSubscriber) Subscribe(ctx context.Context, types ...event.Type) (<-chan Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return nil, ErrAlreadySubscribed
	}
	s.active = true

	out := make(chan Delivery)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)
		s.consume(ctx, types, out)
	}()
	return out, nil
}

func (s *KafkaSubscriber) consume(ctx context.Context, types []event.Type, out chan<- Delivery) {
	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			slog.Warn("failed to fetch change event", "topic", s.topic, "error", err.Error())
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchBackoff):
			}
			continue
		}

		e, err := decode(msg)
		if err != nil {
			slog.Error("dropping malformed change event", "offset", msg.Offset, "error", err.Error())
			d := Delivery{msg: msg, sub: s}
			if rerr := d.Reject(ctx, err, 0); rerr != nil {
				slog.Error("failed to reject malformed change event", "offset", msg.Offset, "error", rerr.Error())
			}
			continue
		}

		d := Delivery{Event: e, msg: msg, sub: s}
		if !e.Matches(types) {
			if aerr := d.Ack(ctx); aerr != nil {
				slog.Warn("failed to skip change event", "event_id", e.ID, "error", aerr.Error())
			}
			continue
		}

		select {
		case out <- d:
		case <-ctx.Done():
			return
		}
	}
}

func (s *KafkaSubscriber) deadLetter(ctx context.Context, msg kafka.Message, cause error, attempts int) error {
	if s.dlqWriter == nil {
		slog.Warn("no dead-letter topic configured; dropping change event", "offset", msg.Offset, "error", cause.Error())
		return nil
	}
	if err := s.dlqWriter.WriteMessages(ctx, deadLetter(msg, s.topic, cause, attempts, time.Now())); err != nil {
		return errs.Wrap(err, "failed to write dead letter")
	}
	return nil
}

// Close waits for the consuming goroutine, which exits once its context is done.
func (s *KafkaSubscriber) Close() error {
	s.wg.Wait()
	err := s.reader.Close()
	if s.dlqWriter != nil {
		if derr := s.dlqWriter.Close(); err == nil {
			err = derr
		}
	}
	return err
}
