package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra/readstore"
	"coworking-booking/internal/infra/repository"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
	retryBase    = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn at ReadCommitted. Writers that must not interleave take
// advisory locks through tx.Locks() before reading the rows they check.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries, base := maxTxRetries, retryBase

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorageUnavailable)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(errs.Mark(err, errTransactionCommit), errs.ErrStorageUnavailable)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrStorageUnavailable)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorageUnavailable)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	profileRepo      shared.ProfileRepository
	announcementRepo shared.AnnouncementRepository
	notificationRepo shared.NotificationRepository
	outboxRepo       shared.OutboxRepository
	lockRepo         shared.LockRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Profiles() shared.ProfileRepository {
	if t.profileRepo == nil {
		t.profileRepo = repository.NewProfileRepository(t.uow.q, t.dbtx)
	}
	return t.profileRepo
}

func (t *pgTx) Announcements() shared.AnnouncementRepository {
	if t.announcementRepo == nil {
		t.announcementRepo = repository.NewAnnouncementRepository(t.uow.q, t.dbtx)
	}
	return t.announcementRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Locks() shared.LockRepository {
	if t.lockRepo == nil {
		t.lockRepo = repository.NewAdvisoryLockRepository(t.uow.q)
	}
	return t.lockRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	profileStore      *readstore.ProfileReadStore
	bookingStore      *readstore.BookingReadStore
	announcementStore *readstore.AnnouncementReadStore
}

func (r *commandReads) profiles() *readstore.ProfileReadStore {
	if r.profileStore == nil {
		r.profileStore = readstore.NewProfileReadStore(r.uow.q, r.dbtx)
	}
	return r.profileStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) ProfileByID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	view, err := r.profiles().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileSnapshot(view, ""), nil
}

func (r *commandReads) ProfileByEmail(ctx context.Context, email string) (*shared.ProfileSnapshot, error) {
	view, hash, err := r.profiles().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return profileSnapshot(view, hash), nil
}

func (r *commandReads) ApprovedProfileIDs(ctx context.Context) ([]uuid.UUID, error) {
	return r.profiles().ApprovedIDs(ctx)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	view, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BookingSnapshot{
		ID:               view.ID,
		OwnerID:          view.OwnerID,
		Room:             view.Room,
		Title:            view.Title,
		Requirements:     view.Requirements,
		StartTime:        view.StartTime,
		EndTime:          view.EndTime,
		SubmitterUnit:    view.SubmitterUnit,
		SubmitterCompany: view.SubmitterCompany,
		CreatedAt:        view.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) OwnerBookingRanges(ctx context.Context, ownerID uuid.UUID, window booking.TimeRange) ([]booking.TimeRange, error) {
	spans, err := r.bookings().OwnerSpansInWindow(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}
	return toTimeRanges(spans)
}

func (r *commandReads) RoomBookingRanges(ctx context.Context, room string, window booking.TimeRange) ([]booking.TimeRange, error) {
	spans, err := r.bookings().RoomSpansIntersecting(ctx, room, window)
	if err != nil {
		return nil, err
	}
	return toTimeRanges(spans)
}

func (r *commandReads) AnnouncementByID(ctx context.Context, id uuid.UUID) (*shared.AnnouncementSnapshot, error) {
	if r.announcementStore == nil {
		r.announcementStore = readstore.NewAnnouncementReadStore(r.uow.q, r.dbtx)
	}
	view, err := r.announcementStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.AnnouncementSnapshot{
		ID:       view.ID,
		AuthorID: view.AuthorID,
		Title:    view.Title,
	}, nil
}

func profileSnapshot(view *queries.ProfileView, passwordHash string) *shared.ProfileSnapshot {
	return &shared.ProfileSnapshot{
		ID:                view.ID,
		Email:             view.Email,
		PasswordHash:      passwordHash,
		FullName:          view.FullName,
		CompanyName:       view.CompanyName,
		Unit:              view.Unit,
		Bio:               view.Bio,
		PhotoURL:          view.PhotoURL,
		Phone:             view.Phone,
		MonthlyHoursQuota: view.MonthlyHoursQuota,
		IsAdmin:           view.IsAdmin,
		IsApproved:        view.IsApproved,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

// Stored rows satisfy end_time > start_time, so conversion only fails on corrupt data.
func toTimeRanges(spans []queries.BookingSpan) ([]booking.TimeRange, error) {
	ranges := make([]booking.TimeRange, 0, len(spans))
	for _, s := range spans {
		tr, err := booking.NewTimeRange(s.StartTime, s.EndTime)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking "+s.ID.String()+" has an invalid range")
		}
		ranges = append(ranges, tr)
	}
	return ranges, nil
}
