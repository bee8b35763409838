package todo

import (
	"math"
	"strconv"
	"strings"
)

// Index returns the position of the first record with the given id, or -1.
func (c Collection) Index(id string) int {
	for i, r := range c {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// NextID returns one more than the largest numeric id in the collection.
// Ids that are not non-negative base-10 integers are ignored.
// An empty collection starts at 1.
// Returns ErrIDsExhausted when the largest id is already math.MaxUint64.
func (c Collection) NextID() (string, error) {
	var highest uint64
	for _, r := range c {
		n, err := strconv.ParseUint(r.ID, 10, 64)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	if highest == math.MaxUint64 {
		return "", ErrIDsExhausted
	}
	return strconv.FormatUint(highest+1, 10), nil
}

// cleanTask trims the task text and folds CRLF and lone CR line breaks
// into LF, the only line break that survives a CSV round trip.
func cleanTask(task string) string {
	task = strings.ReplaceAll(task, "\r\n", "\n")
	task = strings.ReplaceAll(task, "\r", "\n")
	return strings.TrimSpace(task)
}

// Create appends a new open record with the next id and returns it.
func (c *Collection) Create(task string) (Record, error) {
	task = cleanTask(task)
	if task == "" {
		return Record{}, Usagef("task required")
	}
	id, err := c.NextID()
	if err != nil {
		return Record{}, err
	}
	r := Record{ID: id, Task: task}
	*c = append(*c, r)
	return r, nil
}

// Complete marks the record with the given id as completed.
// Completing an already completed record is not an error.
func (c Collection) Complete(id string) error {
	i := c.Index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	c[i].Completed = true
	return nil
}

// Update replaces the task text of the record with the given id.
func (c Collection) Update(id, task string) error {
	task = cleanTask(task)
	if task == "" {
		return Usagef("task required")
	}
	i := c.Index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	c[i].Task = task
	return nil
}

// Delete removes the record with the given id, keeping the order of the rest.
func (c *Collection) Delete(id string) error {
	i := c.Index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	*c = append((*c)[:i], (*c)[i+1:]...)
	return nil
}
