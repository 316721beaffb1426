package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"plainledger/report"
)

type PrintCmd struct {
	Filters []string `help:"Only include transactions posting to a matching account." arg:"" optional:""`
}

func (cmd *PrintCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "print", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprint(ctx.Stdout, report.Print(transactions, cmd.Filters, globals.reportConfig()))
		return nil
	})
}
