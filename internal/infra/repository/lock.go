package repository

import (
	"context"

	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
)

type LockQueries interface {
	AcquireAdvisoryXactLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
}

// AdvisoryLockRepository takes pg_advisory_xact_lock on a hashed key. The lock is
// released when the surrounding transaction commits or rolls back.
type AdvisoryLockRepository struct {
	queries LockQueries
}

func NewAdvisoryLockRepository(queries LockQueries) *AdvisoryLockRepository {
	return &AdvisoryLockRepository{queries: queries}
}

func (r *AdvisoryLockRepository) Acquire(ctx context.Context, tx sqlc.DBTX, key string) error {
	if err := r.queries.AcquireAdvisoryXactLock(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire advisory lock "+key, err)
	}
	return nil
}
