package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no history record has the id asked for.
	ErrRecordNotFound = errors.New("analysis record was not found")

	// ErrRecordExists is returned when a record with the same id is already stored.
	ErrRecordExists = errors.New("analysis record already exists")

	// ErrUnsupportedDSN is returned when the DSN names neither an SQLite file
	// nor a PostgreSQL database.
	ErrUnsupportedDSN = errors.New("unsupported history dsn")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when running a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when reading a result row fails.
	ErrScanningRows = errors.New("failed to scan analysis rows")
)
