package shared

import (
	"context"
	"time"

	"coworking-booking/internal/domain/announcement"
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/notification"
	"coworking-booking/internal/domain/profile"
	sqlc "coworking-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Profiles() ProfileRepository
	Announcements() AnnouncementRepository
	Notifications() NotificationRepository
	Outbox() OutboxRepository
	Locks() LockRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (*ProfileSnapshot, error)
	ProfileByEmail(ctx context.Context, email string) (*ProfileSnapshot, error)
	ApprovedProfileIDs(ctx context.Context) ([]uuid.UUID, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// OwnerBookingRanges returns the owner's bookings starting inside window.
	OwnerBookingRanges(ctx context.Context, ownerID uuid.UUID, window booking.TimeRange) ([]booking.TimeRange, error)
	// RoomBookingRanges returns the room's bookings intersecting window.
	RoomBookingRanges(ctx context.Context, room string, window booking.TimeRange) ([]booking.TimeRange, error)
	AnnouncementByID(ctx context.Context, id uuid.UUID) (*AnnouncementSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *profile.Profile, passwordHash string) (uuid.UUID, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error
	UpdateAdminFields(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *announcement.Announcement) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	// Create reports false when the user already has a notification for the source event.
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) (bool, error)
	MarkRead(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error
	// ClaimBatch locks up to limit unpublished events for the calling transaction.
	ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int32) ([]event.Event, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	// MarkFailed reports true when the event ran out of attempts and will not be claimed again.
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32, at time.Time) (bool, error)
}

// LockRepository serializes writers on a string key until the transaction ends.
type LockRepository interface {
	Acquire(ctx context.Context, tx sqlc.DBTX, key string) error
}
