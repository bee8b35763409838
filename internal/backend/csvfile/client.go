// Package csvfile implements the service.Service interface on top of a
// single CSV file. Every call loads the whole file, applies one operation
// in memory and, for mutations, rewrites the whole file.
package csvfile

import (
	"context"

	"github.com/charmbracelet/log"

	"todosh/internal/todo"
)

// Client implements service.Service using a CSV Store.
type Client struct {
	store  *Store
	logger *log.Logger
}

// New creates a client for the CSV database at path.
// The file is not touched until the first call.
func New(path string, logger *log.Logger) *Client {
	return &Client{
		store:  NewStore(path),
		logger: logger,
	}
}

// Path returns the database file path.
func (c *Client) Path() string {
	return c.store.Path()
}

// Init implements service.Service.
func (c *Client) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.Init(); err != nil {
		return err
	}
	c.logger.Debug("initialized database", "path", c.store.Path())
	return nil
}

// ListRecords implements service.Service.
func (c *Client) ListRecords(ctx context.Context) ([]todo.Record, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CreateRecord implements service.Service.
func (c *Client) CreateRecord(ctx context.Context, task string) (todo.Record, error) {
	var created todo.Record
	err := c.mutate(ctx, "create", func(records *todo.Collection) error {
		var err error
		created, err = records.Create(task)
		return err
	})
	if err != nil {
		return todo.Record{}, err
	}
	return created, nil
}

// CompleteRecord implements service.Service.
func (c *Client) CompleteRecord(ctx context.Context, id string) error {
	return c.mutate(ctx, "complete", func(records *todo.Collection) error {
		return records.Complete(id)
	})
}

// UpdateRecord implements service.Service.
func (c *Client) UpdateRecord(ctx context.Context, id, task string) error {
	return c.mutate(ctx, "update", func(records *todo.Collection) error {
		return records.Update(id, task)
	})
}

// DeleteRecord implements service.Service.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.mutate(ctx, "delete", func(records *todo.Collection) error {
		return records.Delete(id)
	})
}

func (c *Client) load(ctx context.Context) (todo.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded records", "path", c.store.Path(), "count", len(records))
	return records, nil
}

// mutate runs fn against a freshly loaded collection and saves the result.
// Nothing is written if load or fn fails.
func (c *Client) mutate(ctx context.Context, op string, fn func(*todo.Collection) error) error {
	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&records); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.Save(records); err != nil {
		return err
	}
	c.logger.Debug("saved records", "op", op, "path", c.store.Path(), "count", len(records))
	return nil
}
