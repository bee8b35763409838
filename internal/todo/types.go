// Package todo defines the todo record model and the in-memory operations
// applied to a loaded collection.
package todo

// Record represents a single todo item.
type Record struct {
	ID        string
	Task      string
	Completed bool
}

// Collection is an ordered list of records. Order is file order and
// defines display order.
type Collection []Record

// Clone returns a copy of the collection that shares no backing array.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
