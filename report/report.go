// Package report renders aggregation results as fixed-width text. Each
// report is returned as one string; callers decide where it goes.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"plainledger/journal"
	"plainledger/ledger"
)

// DefaultColumns is the default report width.
const DefaultColumns = 79

// WideColumns is the report width in wide mode.
const WideColumns = 132

// Config holds report geometry.
type Config struct {
	// Columns is the total report width in character cells.
	Columns int
}

func (c Config) columns() int {
	if c.Columns <= 0 {
		return DefaultColumns
	}
	return c.Columns
}

// Balances renders the hierarchy as "name ... balance" rows with the
// balance right-aligned at the configured width, followed by a rule and
// the unconsolidated total.
func Balances(tree *ledger.BalanceTree, cfg Config) string {
	cols := cfg.columns()
	var b strings.Builder

	rows := tree.Flatten()
	for _, row := range rows {
		b.WriteString(alignRow(row.Name, row.Balance.String(), cols))
		b.WriteString("\n")
	}

	if len(rows) > 0 {
		b.WriteString(strings.Repeat("-", cols))
		b.WriteString("\n")
		total := tree.Total.String()
		b.WriteString(strings.Repeat(" ", max(cols-runewidth.StringWidth(total), 0)))
		b.WriteString(total)
		b.WriteString("\n")
	}
	return b.String()
}

// BalancesByPeriod renders one balance report per bucket, each under a
// "start - end" banner, separated by double rules.
func BalancesByPeriod(periods []ledger.PeriodBalances, maxDepth int, includeEmpty bool, cfg Config) string {
	cols := cfg.columns()
	var b strings.Builder

	for i, p := range periods {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat("=", cols))
			b.WriteString("\n")
		}
		b.WriteString(p.Start.Format(journal.DateFormat))
		b.WriteString(" - ")
		b.WriteString(p.End.Format(journal.DateFormat))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", cols))
		b.WriteString("\n")
		b.WriteString(Balances(ledger.NewBalanceTree(p.Balances, maxDepth, includeEmpty), cfg))
	}
	return b.String()
}

// Register renders rows as five fixed columns: date, payee, account,
// posting amount, running total. The width left of the three 10-cell
// number/date columns splits one third to the payee, two thirds to the
// account.
func Register(rows []ledger.RegisterRow, cfg Config) string {
	cols := cfg.columns()
	remaining := cols - 10*3 - 4
	payeeWidth := remaining / 3
	accountWidth := remaining - payeeWidth

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s %s %10.10s %10.10s\n",
			fit(row.Date.Format(journal.DateFormat), 10),
			fit(row.Payee, payeeWidth),
			fit(row.Account, accountWidth),
			row.Amount.String(),
			row.Running.String(),
		))
	}
	return b.String()
}

// RegisterByPeriod renders a register per bucket under "start - end"
// banners. The running balance restarts in each bucket.
func RegisterByPeriod(ranges []*ledger.Range, filters []string, cfg Config) string {
	cols := cfg.columns()
	var b strings.Builder

	for i, r := range ranges {
		if i > 0 {
			b.WriteString(strings.Repeat("=", cols))
			b.WriteString("\n")
		}
		b.WriteString(r.Start.Format(journal.DateFormat))
		b.WriteString(" - ")
		b.WriteString(r.End.Format(journal.DateFormat))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", cols))
		b.WriteString("\n")
		b.WriteString(Register(ledger.Register(r.Transactions, filters), cfg))
	}
	return b.String()
}

// Print re-renders transactions in canonical journal form, keeping only
// those with at least one posting matching a filter substring.
func Print(transactions []*journal.Transaction, filters []string, cfg Config) string {
	var b strings.Builder
	for _, t := range transactions {
		if !transactionMatches(t, filters) {
			continue
		}
		b.WriteString(Transaction(t, cfg))
	}
	return b.String()
}

// Transaction renders one transaction: its comments, the header line, and
// postings with amounts right-aligned and long account names truncated.
func Transaction(t *journal.Transaction, cfg Config) string {
	cols := cfg.columns()
	available := cols - 4

	var b strings.Builder
	for _, c := range t.Comments {
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString(t.Date.Format(journal.DateFormat))
	b.WriteString(" ")
	b.WriteString(t.Payee)
	b.WriteString("\n")

	maxName := 0
	for _, p := range t.Postings {
		maxName = max(maxName, runewidth.StringWidth(p.Account))
	}
	nameColumn := min(maxName+4, available-12)
	nameColumn = min(nameColumn, 50)

	for _, p := range t.Postings {
		if p.Amount == nil {
			b.WriteString("    ")
			b.WriteString(p.Account)
			b.WriteString("\n")
			continue
		}

		name := p.Account
		if runewidth.StringWidth(name) > nameColumn-4 {
			if maxDisplay := nameColumn - 7; maxDisplay > 10 {
				name = runewidth.Truncate(name, maxDisplay, "") + "..."
			}
		}

		value := p.Amount.String()
		spaces := available - runewidth.StringWidth(name) - runewidth.StringWidth(value)
		if spaces < 2 {
			spaces = 2
		}
		b.WriteString("    ")
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", spaces))
		b.WriteString(value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Stats renders the summary block.
func Stats(s ledger.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time period               : %s to %s (%d %s)\n",
		s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"), s.Days, pluralDays(s.Days))
	fmt.Fprintf(&b, "Unique payees             : %d\n", s.UniquePayees)
	fmt.Fprintf(&b, "Unique accounts           : %d\n", s.UniqueAccounts)
	fmt.Fprintf(&b, "Number of transactions    : %d (%.1f per day)\n", s.Transactions, s.TransactionsPerDay)
	fmt.Fprintf(&b, "Number of postings        : %d (%.1f per day)\n", s.Postings, s.PostingsPerDay)
	fmt.Fprintf(&b, "Time since last post      : %s\n", s.SinceLastPost)
	return b.String()
}

// Accounts renders the sorted unique account list with a count.
func Accounts(transactions []*journal.Transaction, cfg Config) string {
	cols := cfg.columns()
	names := journal.Accounts(transactions)
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("Accounts in ledger:\n")
	b.WriteString(strings.Repeat("-", cols))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", cols))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %d accounts\n", len(names))
	return b.String()
}

func transactionMatches(t *journal.Transaction, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, p := range t.Postings {
		for _, f := range filters {
			if strings.Contains(p.Account, f) {
				return true
			}
		}
	}
	return false
}

// alignRow left-aligns the name and right-aligns the value within width
// cells.
func alignRow(name, value string, width int) string {
	spaces := width - runewidth.StringWidth(name) - runewidth.StringWidth(value)
	if spaces < 0 {
		spaces = 0
	}
	return name + strings.Repeat(" ", spaces) + value
}

// fit pads or truncates s to exactly width display cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
