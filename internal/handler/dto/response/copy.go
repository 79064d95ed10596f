package response

import (
	"coworking-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyAs maps a read view onto its response shape by field name.
func copyAs[T any](src any) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		return dst, errs.Wrap(err, "failed to map response")
	}
	return dst, nil
}
