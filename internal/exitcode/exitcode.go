// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id, existing database).
	UserError = 1

	// StorageError indicates the database file could not be read, parsed or written.
	StorageError = 2
)
