package changefeed

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

// Relay moves committed change events from the outbox table to the feed.
// Rows are claimed with SKIP LOCKED, so several relays can run side by side.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	interval    time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, batchSize int32, maxAttempts int, interval time.Duration) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: int32(maxAttempts),
		interval:    interval,
	}
}

// RunOnce publishes one batch and returns how many events went out. A failed
// publish stops the batch so later events wait behind it, until the failed
// event runs out of attempts and is abandoned.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Outbox().ClaimBatch(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}
		for _, e := range events {
			if perr := r.publisher.Publish(ctx, e); perr != nil {
				abandoned, merr := tx.Outbox().MarkFailed(ctx, tx.DB(), e.ID, perr.Error(), r.maxAttempts, r.clock.Now())
				if merr != nil {
					return merr
				}
				if !abandoned {
					slog.Warn("failed to publish change event",
						"event_id", e.ID, "type", e.Type.String(), "error", perr.Error())
					return nil
				}
				slog.Error("abandoned change event after repeated publish failures",
					"event_id", e.ID, "type", e.Type.String(), "attempts", r.maxAttempts, "error", perr.Error())
				continue
			}
			if err = tx.Outbox().MarkPublished(ctx, tx.DB(), e.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func (r *Relay) Start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// drain backlogs without waiting a full tick per batch
				for {
					n, err := r.RunOnce(ctx)
					if err != nil {
						if ctx.Err() == nil {
							slog.Error("outbox relay failed", "error", err.Error())
						}
						break
					}
					if n < int(r.batchSize) {
						break
					}
				}
			}
		}
	}()

	slog.Info("outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)
	return nil
}

func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}
