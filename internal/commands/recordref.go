package commands

import (
	"strings"

	"todosh/internal/todo"
)

// RecordRef is a parsed record reference: the id argument and whatever
// positional arguments follow it.
type RecordRef struct {
	ID   string
	Rest []string
}

// ErrIDRequired indicates no id argument was provided.
var ErrIDRequired error = &todo.UsageError{Msg: "task id required"}

// ParseRecordRef parses the leading id argument.
// The id is trimmed; a blank id counts as missing.
// Ids are matched as strings against the database, so no numeric check is
// made here.
func ParseRecordRef(args []string) (RecordRef, error) {
	if len(args) == 0 {
		return RecordRef{}, ErrIDRequired
	}
	id := strings.TrimSpace(args[0])
	if id == "" {
		return RecordRef{}, ErrIDRequired
	}
	if strings.ContainsAny(id, ",\"\r\n") {
		return RecordRef{}, todo.Usagef("invalid task id: %s", args[0])
	}
	return RecordRef{ID: id, Rest: args[1:]}, nil
}

// requireNoRest rejects trailing positional arguments.
func (r RecordRef) requireNoRest() error {
	if len(r.Rest) > 0 {
		return todo.Usagef("unexpected argument: %s", r.Rest[0])
	}
	return nil
}

// joinTask joins positional arguments into task text.
// Returns a usage error when the result is blank.
func joinTask(args []string) (string, error) {
	task := strings.TrimSpace(strings.Join(args, " "))
	if task == "" {
		return "", todo.Usagef("task required")
	}
	return task, nil
}
