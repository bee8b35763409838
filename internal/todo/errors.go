package todo

import (
	"errors"
	"fmt"
)

// ErrExists is returned when initializing a database that already exists.
var ErrExists = errors.New("database already exists")

// ErrIDsExhausted is returned when no larger numeric id can be assigned.
var ErrIDsExhausted = errors.New("no numeric ids left")

// StorageError reports a failure reading, parsing or writing the backing file.
type StorageError struct {
	Op   string // "load", "save" or "init"
	Path string
	Line int // 1-based line of a malformed row, 0 if not row-specific
	Err  error
}

func (e *StorageError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s: line %d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError reports that no record has the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}
