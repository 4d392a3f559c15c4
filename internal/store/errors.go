package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique constraint on email or google_id.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a single
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrStateNotFound is returned when an OAuth state is unknown, expired
	// or already consumed.
	ErrStateNotFound = errors.New("oauth state was not found")

	// ErrStateAlreadyExists is returned when saving a state that is already
	// stored.
	ErrStateAlreadyExists = errors.New("oauth state already exists")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
