package repository

import (
	"context"
	"time"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/repository/converter"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const maxLastErrorLen = 1000

type OutboxQueries interface {
	InsertChangeEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertChangeEventParams) error
	ListUnpublishedChangeEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ChangeEvents, error)
	MarkChangeEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkChangeEventPublishedParams) error
	MarkChangeEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkChangeEventFailedParams) (bool, error)
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{queries: queries, db: db}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error {
	if err := r.queries.InsertChangeEvent(ctx, tx, converter.EventToInsertParams(e)); err != nil {
		return infra.WrapRepoErr("failed to append change event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int32) ([]event.Event, error) {
	rows, err := r.queries.ListUnpublishedChangeEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unpublished change events", err)
	}
	events := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, converter.EventFromRow(row))
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkChangeEventPublished(ctx, tx, sqlc.MarkChangeEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark change event published", err)
	}
	return nil
}

// MarkFailed records a failed attempt. Once the event has used maxAttempts it is
// abandoned at the given time and MarkFailed reports true.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32, at time.Time) (bool, error) {
	if len(reason) > maxLastErrorLen {
		reason = reason[:maxLastErrorLen]
	}
	abandoned, err := r.queries.MarkChangeEventFailed(ctx, tx, sqlc.MarkChangeEventFailedParams{
		ID:          id,
		LastError:   pgconv.StringToPgtype(reason),
		MaxAttempts: maxAttempts,
		FailedAt:    pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark change event failed", err)
	}
	return abandoned, nil
}
