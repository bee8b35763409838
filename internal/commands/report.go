package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todosh/internal/exitcode"
	"todosh/internal/todo"
)

// report prints err to errOut and returns the matching exit code.
func report(errOut io.Writer, err error) int {
	var (
		usageErr    *todo.UsageError
		notFoundErr *todo.NotFoundError
		storageErr  *todo.StorageError
	)

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(errOut, "error: %s\n", usageErr.Msg)
		return exitcode.UserError
	case errors.As(err, &notFoundErr):
		fmt.Fprintf(errOut, "error: %s\n", notFoundErr)
		return exitcode.UserError
	case errors.Is(err, todo.ErrExists):
		if errors.As(err, &storageErr) {
			fmt.Fprintf(errOut, "error: database already exists: %s\n", storageErr.Path)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	case errors.As(err, &storageErr):
		fmt.Fprintf(errOut, "error: storage error: %v\n", storageErr)
		return exitcode.StorageError
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(errOut, "error: interrupted")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
}
