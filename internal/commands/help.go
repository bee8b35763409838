package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todosh/internal/config"
	"todosh/internal/exitcode"
	"todosh/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todosh help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todosh list [common flags]                  List all tasks
  todosh create [common flags] <task...>      Create a task
  todosh complete [common flags] <id>         Mark a task completed
  todosh update [common flags] <id> <task...> Change a task's text
  todosh delete [common flags] <id>           Delete a task
  todosh init [common flags]                  Create an empty database
  todosh help
  todosh version

Aliases:
  ls = list, add = create, done = complete, rm = delete

Common flags:
  --db <path>      Database file (default data/db.csv, env TODOSH_DB)
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
