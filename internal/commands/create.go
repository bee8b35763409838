package commands

import (
	"context"
	"flag"
	"io"

	"todosh/internal/config"
	"todosh/internal/exitcode"
	"todosh/internal/output"
	"todosh/internal/service"
)

func init() {
	Register(&CreateCmd{})
}

// CreateCmd implements the create command.
type CreateCmd struct{}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return []string{"add"} }
func (c *CreateCmd) Synopsis() string  { return "Create a task" }
func (c *CreateCmd) Usage() string     { return "todosh create [common flags] <task...>" }
func (c *CreateCmd) NeedsStore() bool  { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := joinTask(args)
	if err != nil {
		return report(errOut, err)
	}

	rec, err := svc.CreateRecord(ctx, task)
	if err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatCreated(out, rec)
	}
	return exitcode.Success
}
