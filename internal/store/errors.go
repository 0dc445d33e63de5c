package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameNotFound is returned when a query or update targets an entry id
	// that does not exist.
	ErrNameNotFound = errors.New("name entry was not found")

	// ErrStoreUnavailable is returned when the database is unreachable or
	// rolled the operation back for transient reasons (lost connection,
	// deadlock, busy SQLite file). The operation may succeed later.
	ErrStoreUnavailable = errors.New("storage is temporarily unavailable")

	// ErrUnsupportedDriver is returned when the DSN cannot be mapped to a
	// known driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan name row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan name rows")
)
