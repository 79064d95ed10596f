package readstore

import (
	"context"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageViewQueries interface {
	GetUserMonthlyHours(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUserMonthlyHoursParams) (float64, error)
	ListProfileUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProfileUsageParams) ([]sqlc.ListProfileUsageRow, error)
}

type UsageReadStore struct {
	queries UsageViewQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(queries UsageViewQueries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{queries: queries, db: db}
}

func (r *UsageReadStore) MonthlyHours(ctx context.Context, userID uuid.UUID, window booking.TimeRange) (float64, error) {
	hours, err := r.queries.GetUserMonthlyHours(ctx, r.db, sqlc.GetUserMonthlyHoursParams{
		UserID:     userID,
		MonthStart: pgconv.TimeToPgtype(window.Start()),
		MonthEnd:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to aggregate monthly hours", err)
	}
	return hours, nil
}

func (r *UsageReadStore) ListProfileUsage(ctx context.Context, window booking.TimeRange) ([]queries.ProfileUsageRecord, error) {
	rows, err := r.queries.ListProfileUsage(ctx, r.db, sqlc.ListProfileUsageParams{
		MonthStart: pgconv.TimeToPgtype(window.Start()),
		MonthEnd:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profile usage", err)
	}

	records := make([]queries.ProfileUsageRecord, 0, len(rows))
	for _, row := range rows {
		quota, err := pgconv.Float64PtrFromPgtype(row.MonthlyHoursQuota)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid monthly hours quota", err)
		}
		records = append(records, queries.ProfileUsageRecord{
			ProfileID:         row.ID,
			FullName:          row.FullName,
			CompanyName:       pgconv.StringPtrFromPgtype(row.CompanyName),
			Unit:              pgconv.StringPtrFromPgtype(row.AssignedRoom),
			MonthlyHoursQuota: quota,
			UsedHours:         row.UsedHours,
		})
	}
	return records, nil
}
