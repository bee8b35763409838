package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todosh/internal/config"
	"todosh/internal/exitcode"
	"todosh/internal/service"
	"todosh/internal/todo"
)

func init() {
	Register(&InitCmd{})
}

// InitCmd implements the init command.
type InitCmd struct{}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Create an empty database" }
func (c *InitCmd) Usage() string     { return "todosh init [common flags]" }
func (c *InitCmd) NeedsStore() bool  { return true }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return report(errOut, todo.Usagef("unexpected argument: %s", args[0]))
	}

	if err := svc.Init(ctx); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "initialized %s\n", cfg.DatabasePath())
	}
	return exitcode.Success
}
