package queries

import (
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
)

// translateNotFound swaps a repository not-found for the caller's sentinel and
// marks other failures as storage unavailability.
func translateNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrStorageUnavailable)
}
