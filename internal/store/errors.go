package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same (case-normalized) email
	// already exists. Uniqueness is enforced by the database constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set. For the reset-token
	// lookup this also covers an expired window: the hash match and the
	// expiry comparison live in the same WHERE clause.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrHotelAlreadyExists is returned when a hotel insert violates the
	// unique name constraint.
	ErrHotelAlreadyExists = errors.New("hotel name already exists")

	// ErrNoHotelWasFound is returned when a lookup, update, or delete
	// targets a hotel that does not exist.
	ErrNoHotelWasFound = errors.New("no hotel was found")

	// ErrNothingToUpdate is returned when a partial update carries no
	// fields at all.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
