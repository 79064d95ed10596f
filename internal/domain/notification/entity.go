package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeNewAnnouncement  Type = "new_announcement"
	TypeBookingCancelled Type = "booking_cancelled"
)

func (t Type) String() string { return string(t) }

// Notification is a per-user inbox entry derived from a change event.
// SourceEventID makes redelivered events collapse into one row.
type Notification struct {
	id            uuid.UUID
	userID        uuid.UUID
	kind          Type
	title         string
	message       string
	referenceID   *uuid.UUID
	sourceEventID uuid.UUID
	isRead        bool
	createdAt     time.Time
}

func New(userID uuid.UUID, kind Type, title, message string, referenceID *uuid.UUID, sourceEventID uuid.UUID, now time.Time) *Notification {
	return &Notification{
		id:            uuid.New(),
		userID:        userID,
		kind:          kind,
		title:         title,
		message:       message,
		referenceID:   referenceID,
		sourceEventID: sourceEventID,
		createdAt:     now,
	}
}

func (n *Notification) ID() uuid.UUID            { return n.id }
func (n *Notification) UserID() uuid.UUID        { return n.userID }
func (n *Notification) Type() Type               { return n.kind }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) ReferenceID() *uuid.UUID  { return n.referenceID }
func (n *Notification) SourceEventID() uuid.UUID { return n.sourceEventID }
func (n *Notification) IsRead() bool             { return n.isRead }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
