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
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "todosh complete [common flags] <id>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseRecordRef(args)
	if err != nil {
		return report(errOut, err)
	}
	if err := ref.requireNoRest(); err != nil {
		return report(errOut, err)
	}

	if err := svc.CompleteRecord(ctx, ref.ID); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
