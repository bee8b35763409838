package csvfile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosh/internal/logging"
	"todosh/internal/service"
	"todosh/internal/todo"
)

var _ service.Service = (*Client)(nil)

func newClient(t *testing.T, content string) (*Client, string) {
	t.Helper()
	path := writeDB(t, content)
	return New(path, logging.Discard()), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestClient_ListDoesNotMutate(t *testing.T) {
	client, path := newClient(t, exampleDB)
	before, err := os.Stat(path)
	require.NoError(t, err)

	records, err := client.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exampleDB, readFile(t, path))
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestClient_CreateOnEmptyStore(t *testing.T) {
	client, _ := newClient(t, "ID,TASK,COMPLETED\n")
	ctx := context.Background()

	rec, err := client.CreateRecord(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, todo.Record{ID: "1", Task: "Buy milk"}, rec)

	records, err := client.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Record{{ID: "1", Task: "Buy milk", Completed: false}}, records)
}

func TestClient_CreateAssignsIncreasingIDs(t *testing.T) {
	client, _ := newClient(t, exampleDB)
	ctx := context.Background()

	first, err := client.CreateRecord(ctx, "Walk dog")
	require.NoError(t, err)
	second, err := client.CreateRecord(ctx, "Feed cat")
	require.NoError(t, err)

	assert.Equal(t, "4", first.ID)
	assert.Equal(t, "5", second.ID)
}

func TestClient_CreateWithCarriageReturnsListsSameRecord(t *testing.T) {
	client, _ := newClient(t, "ID,TASK,COMPLETED\n")
	ctx := context.Background()

	rec, err := client.CreateRecord(ctx, "line1\r\nline2")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", rec.Task)

	records, err := client.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Record{rec}, records)
}

func TestClient_CompleteFlipsOnlyTarget(t *testing.T) {
	client, _ := newClient(t, exampleDB)
	ctx := context.Background()

	require.NoError(t, client.CompleteRecord(ctx, "2"))

	records, err := client.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Record{
		{ID: "1", Task: "Take out trash", Completed: false},
		{ID: "2", Task: "Cook dinner", Completed: true},
		{ID: "3", Task: "Learn rust", Completed: true},
	}, records)
}

func TestClient_NotFoundLeavesFileUnmodified(t *testing.T) {
	client, path := newClient(t, exampleDB)
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"complete": func() error { return client.CompleteRecord(ctx, "99") },
		"update":   func() error { return client.UpdateRecord(ctx, "99", "x") },
		"delete":   func() error { return client.DeleteRecord(ctx, "99") },
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			var nf *todo.NotFoundError
			require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
			assert.Equal(t, exampleDB, readFile(t, path))
		})
	}
}

func TestClient_UpdateAndDelete(t *testing.T) {
	client, _ := newClient(t, exampleDB)
	ctx := context.Background()

	require.NoError(t, client.UpdateRecord(ctx, "1", "Take out recycling"))
	require.NoError(t, client.DeleteRecord(ctx, "2"))

	records, err := client.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Record{
		{ID: "1", Task: "Take out recycling"},
		{ID: "3", Task: "Learn rust", Completed: true},
	}, records)
}

func TestClient_MalformedFileIsNotMutated(t *testing.T) {
	content := "ID,TASK,COMPLETED\n1,a,maybe\n"
	client, path := newClient(t, content)

	_, err := client.CreateRecord(context.Background(), "b")
	var se *todo.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, content, readFile(t, path))
}

func TestClient_CancelledContext(t *testing.T) {
	client, path := newClient(t, exampleDB)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateRecord(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, exampleDB, readFile(t, path))
}

func TestClient_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.csv")
	client := New(path, logging.Discard())
	ctx := context.Background()

	require.NoError(t, client.Init(ctx))
	assert.ErrorIs(t, client.Init(ctx), todo.ErrExists)

	records, err := client.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	path := writeDB(t, exampleDB)
	client := New(path, logging.New(&buf, true))

	_, err := client.CreateRecord(context.Background(), "x")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "loaded records")
	assert.Contains(t, buf.String(), "saved records")
}
