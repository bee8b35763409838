// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todosh/internal/todo"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It applies the same todo.Collection operations as the CSV backend, without
// a file.
type FakeService struct {
	mu          sync.Mutex
	records     todo.Collection
	initialized bool

	// Calls counts every Service method invocation.
	Calls int

	// Error injection for testing
	InitErr     error
	ListErr     error
	CreateErr   error
	CompleteErr error
	UpdateErr   error
	DeleteErr   error
}

// NewFakeService creates a FakeService holding the given records.
func NewFakeService(records ...todo.Record) *FakeService {
	return &FakeService{records: todo.Collection(records).Clone()}
}

// Records returns a copy of the current records.
func (f *FakeService) Records() []todo.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records.Clone()
}

// Init implements service.Service.
func (f *FakeService) Init(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.InitErr != nil {
		return f.InitErr
	}
	if f.initialized || len(f.records) > 0 {
		return todo.ErrExists
	}
	f.initialized = true
	return nil
}

// ListRecords implements service.Service.
func (f *FakeService) ListRecords(ctx context.Context) ([]todo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.records.Clone(), nil
}

// CreateRecord implements service.Service.
func (f *FakeService) CreateRecord(ctx context.Context, task string) (todo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.CreateErr != nil {
		return todo.Record{}, f.CreateErr
	}
	return f.records.Create(task)
}

// CompleteRecord implements service.Service.
func (f *FakeService) CompleteRecord(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	return f.records.Complete(id)
}

// UpdateRecord implements service.Service.
func (f *FakeService) UpdateRecord(ctx context.Context, id, task string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	return f.records.Update(id, task)
}

// DeleteRecord implements service.Service.
func (f *FakeService) DeleteRecord(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	return f.records.Delete(id)
}
