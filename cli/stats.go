package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"plainledger/ledger"
	"plainledger/report"
)

type StatsCmd struct{}

func (cmd *StatsCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "stats", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		summary := ledger.Stats(transactions, time.Now())
		_, _ = fmt.Fprint(ctx.Stdout, report.Stats(summary))
		return nil
	})
}
