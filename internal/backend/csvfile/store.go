package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"todosh/internal/todo"
)

// Column names of the header row, in file order.
var header = []string{"ID", "TASK", "COMPLETED"}

// Store reads and writes the whole collection to a single CSV file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record from the backing file.
// The file must exist and start with the ID,TASK,COMPLETED header.
// Any malformed row fails the whole load.
// Whitespace around every field is ignored, quoted fields included.
func (s *Store) Load() (todo.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.fail("load", 0, err)
	}

	r := csv.NewReader(bytes.NewReader(trimAfterQuotes(data)))
	r.FieldsPerRecord = len(header)
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	row, err := r.Read()
	if err == io.EOF {
		// Zero-byte file
		return todo.Collection{}, nil
	}
	if err != nil {
		return nil, s.fail("load", parseLine(err), err)
	}
	if err := checkHeader(row); err != nil {
		line, _ := r.FieldPos(0)
		return nil, s.fail("load", line, err)
	}

	records := todo.Collection{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.fail("load", parseLine(err), err)
		}
		rec, err := decodeRow(row)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, s.fail("load", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save overwrites the backing file with the header and every record in order.
// The write is not atomic.
func (s *Store) Save(records todo.Collection) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return s.fail("save", 0, err)
	}

	if err := writeAll(f, records); err != nil {
		f.Close()
		return s.fail("save", 0, err)
	}
	if err := f.Close(); err != nil {
		return s.fail("save", 0, err)
	}
	return nil
}

// Init creates the parent directory and a header-only file.
// Returns an error wrapping todo.ErrExists if the file is already there.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return s.fail("init", 0, todo.ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return s.fail("init", 0, err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return s.fail("init", 0, todo.ErrExists)
		}
		return s.fail("init", 0, err)
	}
	if err := writeAll(f, nil); err != nil {
		f.Close()
		return s.fail("init", 0, err)
	}
	if err := f.Close(); err != nil {
		return s.fail("init", 0, err)
	}
	return nil
}

func (s *Store) fail(op string, line int, err error) error {
	return &todo.StorageError{Op: op, Path: s.path, Line: line, Err: err}
}

func writeAll(w io.Writer, records todo.Collection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(encodeRow(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func checkHeader(row []string) error {
	for i, want := range header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return fmt.Errorf("invalid header: want %s, got %s",
				strings.Join(header, ","), strings.Join(row, ","))
		}
	}
	return nil
}

func decodeRow(row []string) (todo.Record, error) {
	id := strings.TrimSpace(row[0])
	task := strings.TrimSpace(row[1])
	completed := strings.TrimSpace(row[2])

	if id == "" {
		return todo.Record{}, errors.New("empty ID")
	}
	if task == "" {
		return todo.Record{}, errors.New("empty TASK")
	}

	var done bool
	switch strings.ToLower(completed) {
	case "true":
		done = true
	case "false":
		done = false
	default:
		return todo.Record{}, fmt.Errorf("invalid COMPLETED value: %q", completed)
	}

	return todo.Record{ID: id, Task: task, Completed: done}, nil
}

func encodeRow(rec todo.Record) []string {
	completed := "false"
	if rec.Completed {
		completed = "true"
	}
	return []string{rec.ID, rec.Task, completed}
}

// trimAfterQuotes drops spaces and tabs between the closing quote of a
// quoted field and the following comma or line end, which encoding/csv
// otherwise rejects. Line breaks are kept so error line numbers still match
// the file.
func trimAfterQuotes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inQuotes := false
	fieldStart := true

	for i := 0; i < len(data); i++ {
		c := data[i]
		out = append(out, c)

		if inQuotes {
			if c != '"' {
				continue
			}
			if i+1 < len(data) && data[i+1] == '"' {
				// Escaped quote
				out = append(out, '"')
				i++
				continue
			}
			inQuotes = false
			j := i + 1
			for j < len(data) && (data[j] == ' ' || data[j] == '\t') {
				j++
			}
			if j == len(data) || data[j] == ',' || data[j] == '\n' || data[j] == '\r' {
				i = j - 1
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = fieldStart
			fieldStart = false
		case ',', '\n':
			fieldStart = true
		case ' ', '\t':
			// Leading space is trimmed by the reader.
		default:
			fieldStart = false
		}
	}
	return out
}

// parseLine extracts the line number from a csv.ParseError.
func parseLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
