package changefeed

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/pkg/errs"
)

// EventApplier turns a change event into user notifications idempotently.
type EventApplier interface {
	ApplyEvent(ctx context.Context, e event.Event) (int, error)
}

// Notifier feeds subscribed events to an EventApplier. Storage failures are
// retried in place; anything else, or exhausting the retries, dead-letters
// the event.
type Notifier struct {
	subscriber Subscriber
	applier    EventApplier
	types      []event.Type
	maxRetries int
	backoff    time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotifier(subscriber Subscriber, applier EventApplier, types []event.Type, maxRetries int) *Notifier {
	return &Notifier{
		subscriber: subscriber,
		applier:    applier,
		types:      types,
		maxRetries: max(maxRetries, 0),
		backoff:    200 * time.Millisecond,
	}
}

// Run blocks until ctx is done or the subscription ends.
func (n *Notifier) Run(ctx context.Context) error {
	deliveries, err := n.subscriber.Subscribe(ctx, n.types...)
	if err != nil {
		return err
	}
	for d := range deliveries {
		n.handle(ctx, d)
	}
	return nil
}

func (n *Notifier) handle(ctx context.Context, d Delivery) {
	var err error
	attempts := 0
	for attempts <= n.maxRetries {
		attempts++
		var created int
		if created, err = n.applier.ApplyEvent(ctx, d.Event); err == nil {
			if aerr := d.Ack(ctx); aerr != nil {
				slog.Warn("failed to acknowledge change event", "event_id", d.Event.ID, "error", aerr.Error())
			}
			slog.Debug("change event delivered", "event_id", d.Event.ID, "notifications", created)
			return
		}
		if !errs.Is(err, errs.ErrStorageUnavailable) {
			break
		}
		select {
		case <-ctx.Done():
			// left unacknowledged; redelivered after restart
			return
		case <-time.After(n.backoff * time.Duration(attempts)):
		}
	}

	slog.Error("dead-lettering change event",
		"event_id", d.Event.ID, "type", d.Event.Type.String(), "attempts", attempts, "error", err.Error())
	if rerr := d.Reject(ctx, err, attempts); rerr != nil {
		slog.Error("failed to dead-letter change event", "event_id", d.Event.ID, "error", rerr.Error())
	}
}

func (n *Notifier) Start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.done = make(chan struct{})
	go func() {
		defer close(n.done)
		if err := n.Run(ctx); err != nil {
			slog.Error("notifier stopped", "error", err.Error())
		}
	}()
	return nil
}

func (n *Notifier) Stop(ctx context.Context) error {
	if n.cancel == nil {
		return nil
	}
	n.cancel()
	select {
	case <-n.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return n.subscriber.Close()
}
