package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoSuchFileInDatabase is returned when a catalog entry with the
	// requested id does not exist.
	ErrNoSuchFileInDatabase = errors.New("no such file in database")

	// ErrFileAlreadyExists is returned when inserting a catalog entry whose id
	// is already taken.
	ErrFileAlreadyExists = errors.New("file already exists")

	// ErrChangeAlreadyExists is returned when a change with the same
	// content-addressed id is already in the changelog.
	ErrChangeAlreadyExists = errors.New("change already exists")

	// ErrFileContentNotFound is returned by [FileStorage] when no bytes are
	// stored for a file.
	ErrFileContentNotFound = errors.New("file content not found")

	// ErrInvalidFileExtension is returned by [FileStorage] for an extension
	// that would place the file outside its directory.
	ErrInvalidFileExtension = errors.New("invalid file extension")

	// ErrUnsupportedDSN is returned when the DSN names an unknown backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
