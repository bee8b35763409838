// Package service defines the backend-agnostic interface for todo operations.
package service

import (
	"context"

	"todosh/internal/todo"
)

// Service defines the interface for todo backend operations.
// Commands never touch the database file directly.
//
// Each call is a complete load/modify/save cycle: mutations either persist
// the whole updated collection or leave the backing store untouched.
type Service interface {
	// Init creates an empty database.
	// Returns an error wrapping todo.ErrExists if one is already present.
	Init(ctx context.Context) error

	// ListRecords returns all records in file order.
	ListRecords(ctx context.Context) ([]todo.Record, error)

	// CreateRecord appends an open record with the next free id.
	CreateRecord(ctx context.Context, task string) (todo.Record, error)

	// CompleteRecord marks the first record with the given id as completed.
	// Returns *todo.NotFoundError if no record matches.
	CompleteRecord(ctx context.Context, id string) error

	// UpdateRecord replaces the task text of the record with the given id.
	UpdateRecord(ctx context.Context, id, task string) error

	// DeleteRecord removes the record with the given id.
	DeleteRecord(ctx context.Context, id string) error
}
