package commands

import (
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
)

// storageErr passes domain rejections through untouched and marks database
// failures as storage unavailability. Other repository kinds stay as they are.
func storageErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return err
}

// referenceErr reports a foreign key violation as missing, the domain error for
// the row the write referenced.
func referenceErr(err error, missing error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return missing
	}
	return storageErr(err, nil)
}
