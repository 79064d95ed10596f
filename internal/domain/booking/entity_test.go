//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, "Sala de Reunião 1", actual.Room().String())
		assert.Equal(t, 2.0, actual.Slot().Hours())
		assert.Equal(t, "07", *actual.Submitter().Unit())
		assert.Equal(t, "Acme Ltda", *actual.Submitter().Company())
		assert.Nil(t, actual.Requirements().Ptr())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
	})

	t.Run("time range validation", func(t *testing.T) {
		start := builder.At(2024, time.March, 1, 9, 0)
		runCases(t, []testCase{
			{
				name:   "end equals start",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot(start, start) },
				errIs:  booking.ErrInvalidRange,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot(start, start.Add(-time.Minute)) },
				errIs:  booking.ErrInvalidRange,
			},
			{
				name:   "one minute booking",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot(start, start.Add(time.Minute)) },
			},
			{
				name:   "booking across midnight",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot(start.Add(14*time.Hour), start.Add(17*time.Hour)) },
			},
		})
	})

	t.Run("room and title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank room",
				mutate: func(b *builder.BookingBuilder) { b.WithRoom("   ") },
				errIs:  booking.ErrEmptyRoom,
			},
			{
				name:   "room too long",
				mutate: func(b *builder.BookingBuilder) { b.WithRoom(strings.Repeat("r", booking.MaxRoomLength+1)) },
				errIs:  booking.ErrRoomTooLong,
			},
			{
				name:   "blank title",
				mutate: func(b *builder.BookingBuilder) { b.WithTitle("") },
				errIs:  booking.ErrEmptyTitle,
			},
			{
				name:   "maximum length title",
				mutate: func(b *builder.BookingBuilder) { b.WithTitle(strings.Repeat("t", booking.MaxTitleLength)) },
			},
			{
				name:   "title too long",
				mutate: func(b *builder.BookingBuilder) { b.WithTitle(strings.Repeat("t", booking.MaxTitleLength+1)) },
				errIs:  booking.ErrTitleTooLong,
			},
			{
				name: "requirements too long",
				mutate: func(b *builder.BookingBuilder) {
					b.WithRequirements(strings.Repeat("x", booking.MaxRequirementsLength+1))
				},
				errIs: booking.ErrRequirementsTooLong,
			},
		})
	})

	t.Run("submitter snapshot", func(t *testing.T) {
		t.Run("blank values become nil", func(t *testing.T) {
			blank := "  "
			actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.Unit = &blank
				b.Company = &blank
			}).BuildDomain()
			require.NoError(t, err)
			assert.Nil(t, actual.Submitter().Unit())
			assert.Nil(t, actual.Submitter().Company())
		})

		t.Run("long values are clipped", func(t *testing.T) {
			long := strings.Repeat("é", booking.MaxSubmitterLength+10)
			actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.Company = &long
			}).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, booking.MaxSubmitterLength, len([]rune(*actual.Submitter().Company())))
		})
	})

	t.Run("reconstruct keeps stored values", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithRequirements("projector")
		actual := b.BuildStored()

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, b.Start, actual.Slot().Start())
		assert.Equal(t, b.End, actual.Slot().End())
		assert.Equal(t, "projector", *actual.Requirements().Ptr())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
