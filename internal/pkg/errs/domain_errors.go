package errs

// Cross-layer marks. Concrete sentinels live next to the domain or use case that raises them.
var (
	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Authorization errors
	ErrForbidden = New("forbidden")

	// Lookup errors
	ErrNotFound = New("not found")
)

// Infrastructure errors surfaced to callers as a single category.
var ErrStorageUnavailable = New("storage unavailable")
