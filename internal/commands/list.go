package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todosh/internal/config"
	"todosh/internal/exitcode"
	"todosh/internal/output"
	"todosh/internal/service"
	"todosh/internal/todo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todosh list [common flags]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return report(errOut, todo.Usagef("unexpected argument: %s", args[0]))
	}

	records, err := svc.ListRecords(ctx)
	if err != nil {
		return report(errOut, err)
	}

	if len(records) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTable(out, records)
	return exitcode.Success
}
