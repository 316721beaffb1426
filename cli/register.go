package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"plainledger/ledger"
	"plainledger/report"
)

type RegisterCmd struct {
	Filters []string `help:"Only include postings whose account contains one of these." arg:"" optional:""`
	Period  string   `help:"Restart the running total per period (monthly, quarterly, semiyearly, yearly)."`
}

func (cmd *RegisterCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "register", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		cfg := globals.reportConfig()

		if cmd.Period != "" {
			period, err := ledger.ParsePeriod(cmd.Period)
			if err != nil {
				return err
			}
			ranges := ledger.TransactionsByPeriod(transactions, period)
			_, _ = fmt.Fprint(ctx.Stdout, report.RegisterByPeriod(ranges, cmd.Filters, cfg))
			return nil
		}

		rows := ledger.Register(transactions, cmd.Filters)
		_, _ = fmt.Fprint(ctx.Stdout, report.Register(rows, cfg))
		return nil
	})
}
