package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"plainledger/report"
)

type AccountsCmd struct{}

func (cmd *AccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "accounts", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprint(ctx.Stdout, report.Accounts(transactions, globals.reportConfig()))
		return nil
	})
}
