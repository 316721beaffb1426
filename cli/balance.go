package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"plainledger/ledger"
	"plainledger/report"
)

type BalanceCmd struct {
	Filters []string `help:"Only include accounts whose name contains one of these." arg:"" optional:""`
	Depth   int      `help:"Fold accounts deeper than this many levels." default:"-1"`
	Empty   bool     `help:"Show accounts with a zero balance." short:"E"`
	Period  string   `help:"Break balances down per period (monthly, quarterly, semiyearly, yearly)."`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "balance", func(runCtx context.Context) error {
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
			periods := ledger.BalancesByPeriod(transactions, period, nil)
			_, _ = fmt.Fprint(ctx.Stdout, report.BalancesByPeriod(periods, cmd.Depth, cmd.Empty, cfg))
			return nil
		}

		timer := telemetryTimer(runCtx, "aggregate balances")
		leaves := ledger.Balances(transactions, cmd.Filters)
		tree := ledger.NewBalanceTree(leaves, cmd.Depth, cmd.Empty)
		timer.End()

		_, _ = fmt.Fprint(ctx.Stdout, report.Balances(tree, cfg))
		return nil
	})
}
