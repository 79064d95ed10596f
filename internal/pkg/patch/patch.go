// Package patch merges partial updates, where a nil field means "leave unchanged".
package patch

// Coalesce returns *update when set, otherwise current.
func Coalesce[T any](update *T, current T) T {
	if update != nil {
		return *update
	}
	return current
}

// Optional is Coalesce for nullable fields. A set update replaces current,
// including with an empty value, which callers normalise to "cleared".
func Optional[T any](update, current *T) *T {
	if update != nil {
		return update
	}
	return current
}
