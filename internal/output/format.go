// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"todosh/internal/todo"
)

// Column headers of the record table.
var columns = []string{"ID", "TASK", "COMPLETED"}

// FormatTable renders records as a bordered table, one row per record in
// collection order, followed by a newline.
func FormatTable(w io.Writer, records []todo.Record) {
	renderer := lipgloss.NewRenderer(w)
	cell := renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		})

	for _, r := range records {
		t.Row(r.ID, normalizeTitle(r.Task), strconv.FormatBool(r.Completed))
	}

	fmt.Fprintln(w, t.String())
}

// FormatCreated formats the confirmation line for a new record.
func FormatCreated(w io.Writer, r todo.Record) {
	fmt.Fprintf(w, "created %s\n", r.ID)
}

// normalizeTitle flattens a task title onto one line for display.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}
