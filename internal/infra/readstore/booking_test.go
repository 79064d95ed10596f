//go:build unit

package readstore

import (
	"context"
	"testing"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListUpcomingBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByUserParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Bookings)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListPastBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastBookingsByUserParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Bookings)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListUpcomingBookingsWithOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsWithOwnerParams) ([]sqlc.ListUpcomingBookingsWithOwnerRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListUpcomingBookingsWithOwnerRow)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListPastBookingsWithOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastBookingsWithOwnerParams) ([]sqlc.ListPastBookingsWithOwnerRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListPastBookingsWithOwnerRow)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListRoomBookingsByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByDayParams) ([]sqlc.ListRoomBookingsByDayRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListRoomBookingsByDayRow)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListOwnerBookingRangesInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingRangesInWindowParams) ([]sqlc.ListOwnerBookingRangesInWindowRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListOwnerBookingRangesInWindowRow)
	return rows, args.Error(1)
}

func (m *MockBookingViewQueries) ListRoomBookingsIntersecting(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsIntersectingParams) ([]sqlc.ListRoomBookingsIntersectingRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListRoomBookingsIntersectingRow)
	return rows, args.Error(1)
}

func TestBookingFindByID(t *testing.T) {
	stored := builder.NewBookingBuilder().WithRequirements("projector").BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Bookings
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantView   bool
	}{
		{name: "success", mockReturn: stored, wantView: true},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingViewQueries)
			q.On("GetBookingByID", mock.Anything, mock.Anything, stored.ID).Return(tt.mockReturn, tt.mockError)

			view, err := NewBookingReadStore(q, nil).FindByID(context.Background(), stored.ID)

			if tt.wantView {
				require.NoError(t, err)
				assert.Equal(t, stored.ID, view.ID)
				assert.Equal(t, stored.RoomID, view.Room)
				require.NotNil(t, view.Requirements)
				assert.Equal(t, "projector", *view.Requirements)
				assert.True(t, view.StartTime.Equal(stored.StartTime.Time))
			} else {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			q.AssertExpectations(t)
		})
	}

	t.Run("database error counts as storage unavailable", func(t *testing.T) {
		q := new(MockBookingViewQueries)
		q.On("GetBookingByID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Bookings{}, assert.AnError)

		_, err := NewBookingReadStore(q, nil).FindByID(context.Background(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable))
	})
}

func TestBookingListByOwner(t *testing.T) {
	owner := uuid.New()
	now := builder.At(2024, 3, 1, 8, 0)
	row := builder.NewBookingBuilder().WithOwnerID(owner).BuildInfra()

	t.Run("upcoming", func(t *testing.T) {
		q := new(MockBookingViewQueries)
		q.On("ListUpcomingBookingsByUser", mock.Anything, mock.Anything, sqlc.ListUpcomingBookingsByUserParams{
			UserID: owner, Now: pgconv.TimeToPgtype(now), Lim: 50,
		}).Return([]sqlc.Bookings{row}, nil)

		views, err := NewBookingReadStore(q, nil).ListByOwner(context.Background(), owner, queries.ScopeUpcoming, now, 50)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, owner, views[0].OwnerID)
		q.AssertExpectations(t)
	})

	t.Run("past", func(t *testing.T) {
		q := new(MockBookingViewQueries)
		q.On("ListPastBookingsByUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		views, err := NewBookingReadStore(q, nil).ListByOwner(context.Background(), owner, queries.ScopePast, now, 10)
		require.NoError(t, err)
		assert.Empty(t, views)
		q.AssertNotCalled(t, "ListUpcomingBookingsByUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingListWithOwner(t *testing.T) {
	now := builder.At(2024, 3, 1, 8, 0)
	search := "acme"
	row := sqlc.ListPastBookingsWithOwnerRow{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RoomID:       "Auditório",
		Title:        "All hands",
		StartTime:    pgconv.TimeToPgtype(builder.At(2024, 2, 28, 9, 0)),
		EndTime:      pgconv.TimeToPgtype(builder.At(2024, 2, 28, 10, 0)),
		OwnerName:    "Maria Souza",
		OwnerCompany: pgtype.Text{String: "Acme Ltda", Valid: true},
	}

	q := new(MockBookingViewQueries)
	q.On("ListPastBookingsWithOwner", mock.Anything, mock.Anything, sqlc.ListPastBookingsWithOwnerParams{
		Now: pgconv.TimeToPgtype(now), Search: pgtype.Text{String: search, Valid: true}, Lim: 100,
	}).Return([]sqlc.ListPastBookingsWithOwnerRow{row}, nil)

	views, err := NewBookingReadStore(q, nil).ListWithOwner(context.Background(), queries.ScopePast, now, &search, 100)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].OwnerName)
	assert.Equal(t, "Maria Souza", *views[0].OwnerName)
	require.NotNil(t, views[0].OwnerCompany)
	assert.Equal(t, "Acme Ltda", *views[0].OwnerCompany)
	assert.Nil(t, views[0].Requirements)
}

func TestRoomSpansIntersecting(t *testing.T) {
	window, err := booking.NewTimeRange(builder.At(2024, 3, 1, 10, 45), builder.At(2024, 3, 1, 12, 30))
	require.NoError(t, err)
	id := uuid.New()

	q := new(MockBookingViewQueries)
	q.On("ListRoomBookingsIntersecting", mock.Anything, mock.Anything, sqlc.ListRoomBookingsIntersectingParams{
		RoomID:      "Sala de Reunião 1",
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		WindowStart: pgconv.TimeToPgtype(window.Start()),
	}).Return([]sqlc.ListRoomBookingsIntersectingRow{{
		ID:        id,
		StartTime: pgconv.TimeToPgtype(builder.At(2024, 3, 1, 9, 0)),
		EndTime:   pgconv.TimeToPgtype(builder.At(2024, 3, 1, 11, 0)),
	}}, nil)

	spans, err := NewBookingReadStore(q, nil).RoomSpansIntersecting(context.Background(), "Sala de Reunião 1", window)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, id, spans[0].ID)
	assert.True(t, spans[0].EndTime.Equal(builder.At(2024, 3, 1, 11, 0)))
	q.AssertExpectations(t)
}
