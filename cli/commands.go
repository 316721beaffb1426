package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"plainledger/journal"
	"plainledger/ledger"
	"plainledger/loader"
	"plainledger/output"
	"plainledger/report"
	"plainledger/telemetry"
)

// Globals defines global flags available to all commands.
type Globals struct {
	File      FileOrStdin `help:"Journal file to read (use '-' for stdin)." short:"f" default:"ledger.dat"`
	BeginDate string      `help:"Include transactions on or after this date." short:"b" placeholder:"DATE"`
	EndDate   string      `help:"Include transactions on or before this date." short:"e" placeholder:"DATE"`
	Payee     string      `help:"Include only transactions whose payee contains this text."`
	Wide      bool        `help:"Use wide output (132 columns)."`
	Columns   int         `help:"Override the output width in columns."`
	Telemetry bool        `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Balance  BalanceCmd  `cmd:"" aliases:"bal" help:"Show hierarchical account balances."`
	Register RegisterCmd `cmd:"" aliases:"reg" help:"Show postings with a running total."`
	Print    PrintCmd    `cmd:"" help:"Print transactions in canonical journal form."`
	Stats    StatsCmd    `cmd:"" help:"Show summary statistics for the journal."`
	Accounts AccountsCmd `cmd:"" help:"List the distinct account names in the journal."`
	Equity   EquityCmd   `cmd:"" help:"Print an opening balances transaction."`
	Import   ImportCmd   `cmd:"" help:"Import transactions from a CSV file."`
	Watch    WatchCmd    `cmd:"" help:"Re-run the balance report whenever the journal changes."`
}

// dateLayouts accepted by the -b and -e flags.
var dateLayouts = []string{journal.DateFormat, "2006-01-02", "2006/1/2", "2006-1-2"}

func parseFlagDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// loadJournal reads the journal file with include resolution and applies
// the global date and payee filters.
func (g *Globals) loadJournal(ctx context.Context) ([]*journal.Transaction, error) {
	ldr := loader.New(loader.WithFollowIncludes())

	transactions, err := g.File.LoadTransactions(ctx, ldr)
	if err != nil {
		return nil, err
	}

	var begin, end time.Time
	if g.BeginDate != "" {
		if begin, err = parseFlagDate(g.BeginDate); err != nil {
			return nil, err
		}
	}
	if g.EndDate != "" {
		if end, err = parseFlagDate(g.EndDate); err != nil {
			return nil, err
		}
	}
	if !begin.IsZero() || !end.IsZero() {
		transactions = ledger.FilterByDate(transactions, begin, end)
	}
	if g.Payee != "" {
		transactions = ledger.FilterByPayee(transactions, g.Payee)
	}

	return transactions, nil
}

// reportConfig resolves the output width. An explicit --columns wins, then
// --wide, then the terminal width, then the default.
func (g *Globals) reportConfig() report.Config {
	if g.Columns > 0 {
		return report.Config{Columns: g.Columns}
	}
	if g.Wide {
		return report.Config{Columns: report.WideColumns}
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return report.Config{Columns: width}
	}
	return report.Config{Columns: report.DefaultColumns}
}

// telemetryTimer starts a timer on the context's collector.
func telemetryTimer(ctx context.Context, name string) telemetry.Timer {
	return telemetry.FromContext(ctx).Start(name)
}

// withTelemetry runs fn under a timing collector when --telemetry is set,
// reporting the collected timings to stderr afterwards.
func (g *Globals) withTelemetry(ctx *kong.Context, name string, fn func(context.Context) error) error {
	runCtx := context.Background()

	if !g.Telemetry {
		return fn(runCtx)
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)

	timer := collector.Start(fmt.Sprintf("%s %s", name, filepath.Base(g.File.Filename)))
	defer func() {
		timer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
	}()

	return fn(runCtx)
}
