package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is immutable once admitted. Cancellation deletes it.
type Booking struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	room         Room
	slot         TimeRange
	title        Title
	requirements Requirements
	submitter    Submitter
	createdAt    time.Time
}

type NewBookingParams struct {
	OwnerID      uuid.UUID
	Room         string
	Start        time.Time
	End          time.Time
	Title        string
	Requirements *string
	Unit         *string
	Company      *string
}

func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	slot, err := NewTimeRange(p.Start, p.End)
	if err != nil {
		return nil, err
	}
	room, err := NewRoom(p.Room)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(p.Title)
	if err != nil {
		return nil, err
	}
	requirements, err := NewRequirements(p.Requirements)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:           uuid.New(),
		ownerID:      p.OwnerID,
		room:         room,
		slot:         slot,
		title:        title,
		requirements: requirements,
		submitter:    NewSubmitter(p.Unit, p.Company),
		createdAt:    now,
	}, nil
}

// ReconstructBooking rebuilds a stored booking without re-running validation.
func ReconstructBooking(id, ownerID uuid.UUID, room string, start, end time.Time, title string, requirements, unit, company *string, createdAt time.Time) *Booking {
	var req Requirements
	if requirements != nil {
		req = Requirements{value: *requirements}
	}
	return &Booking{
		id:           id,
		ownerID:      ownerID,
		room:         Room{value: room},
		slot:         TimeRange{start: start, end: end},
		title:        Title{value: title},
		requirements: req,
		submitter:    Submitter{unit: unit, company: company},
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) OwnerID() uuid.UUID         { return b.ownerID }
func (b *Booking) Room() Room                 { return b.room }
func (b *Booking) Slot() TimeRange            { return b.slot }
func (b *Booking) Title() Title               { return b.title }
func (b *Booking) Requirements() Requirements { return b.requirements }
func (b *Booking) Submitter() Submitter       { return b.submitter }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
