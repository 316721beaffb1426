package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"plainledger/ledger"
	"plainledger/report"
)

type EquityCmd struct{}

func (cmd *EquityCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "equity", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		snapshot := ledger.Equity(transactions)
		if snapshot == nil {
			return nil
		}

		_, _ = fmt.Fprint(ctx.Stdout, report.Transaction(snapshot, globals.reportConfig()))
		return nil
	})
}
