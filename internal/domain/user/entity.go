package user

import (
	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAdminRequired = errs.NewForbidden("admin role required")

// Actor is the authenticated caller of a command or query. It is always passed
// explicitly; use cases never read session state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanActFor reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanActFor(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.ID == ownerID
}
