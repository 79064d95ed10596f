package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBookingCreated      Type = "booking.created"
	TypeBookingDeleted      Type = "booking.deleted"
	TypeAnnouncementCreated Type = "announcement.created"
	TypeProfileApproved     Type = "profile.approved"
)

func (t Type) String() string { return string(t) }

// Event is one entry of the change feed. Consumers must tolerate duplicates.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       Type            `json:"type"`
	EntityID   uuid.UUID       `json:"entity_id"`
	ActorID    uuid.UUID       `json:"actor_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type BookingPayload struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Room    string    `json:"room"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

type AnnouncementPayload struct {
	Title string `json:"title"`
}

type ProfilePayload struct {
	Email string `json:"email"`
}

func New(t Type, entityID, actorID uuid.UUID, payload any, now time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.New(),
		Type:       t,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: now,
		Payload:    raw,
	}, nil
}

func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Matches reports whether the event type is in types. An empty filter matches all.
func (e Event) Matches(types []Type) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if e.Type == t {
			return true
		}
	}
	return false
}
