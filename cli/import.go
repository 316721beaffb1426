package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"plainledger/importer"
)

type ImportCmd struct {
	Account string      `help:"Account hint to resolve the import destination against." arg:""`
	CSV     FileOrStdin `help:"CSV file to import (use '-' for stdin)." arg:""`

	ClassSubstring string  `help:"Train the classifier on accounts containing this text." default:"Expenses"`
	DateFormat     string  `help:"Date layout of the CSV date column, in Go reference time form." default:"01/02/2006"`
	Delimiter      string  `help:"CSV field delimiter." default:","`
	Scale          float64 `help:"Multiply every imported amount by this factor." default:"1"`
	Negate         bool    `help:"Negate every imported amount."`
	AllowMatching  bool    `help:"Import rows that match an existing transaction instead of skipping them."`
	Append         bool    `help:"Append the generated transactions to the journal file." short:"a"`
}

func (cmd *ImportCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx, "import", func(runCtx context.Context) error {
		transactions, err := globals.loadJournal(runCtx)
		if err != nil {
			return err
		}

		opts, err := cmd.options()
		if err != nil {
			return err
		}

		csvData := string(cmd.CSV.Contents)
		if cmd.CSV.Filename != "<stdin>" {
			raw, err := os.ReadFile(cmd.CSV.Filename)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", cmd.CSV.Filename, err)
			}
			csvData = string(raw)
		}

		timer := telemetryTimer(runCtx, "classify and convert rows")
		generated, err := importer.Import(transactions, csvData, cmd.Account, opts)
		timer.End()
		if err != nil {
			return err
		}

		if len(generated) == 0 {
			printInfof(ctx.Stderr, "No new transactions found in %s", pathStyle.Render(cmd.CSV.Filename))
			return nil
		}

		rendered := importer.Render(generated)

		if !cmd.Append {
			_, _ = fmt.Fprint(ctx.Stdout, rendered)
			return nil
		}

		if globals.File.Filename == "<stdin>" {
			return fmt.Errorf("cannot append to a journal read from stdin")
		}

		question := fmt.Sprintf("Append %d transaction%s to %q?",
			len(generated), pluralSuffix(len(generated)), globals.File.Filename)
		confirmed, err := promptYesNo(ctx, question)
		if err != nil {
			return err
		}
		if !confirmed {
			printError(ctx.Stderr, "import aborted")
			return nil
		}

		f, err := os.OpenFile(globals.File.Filename, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open %s for append: %w", globals.File.Filename, err)
		}
		defer f.Close()

		if _, err := f.WriteString(rendered); err != nil {
			return fmt.Errorf("failed to append to %s: %w", globals.File.Filename, err)
		}

		printSuccess(ctx.Stdout, fmt.Sprintf("Appended %d transaction%s to %s",
			len(generated), pluralSuffix(len(generated)), pathStyle.Render(globals.File.Filename)))
		return nil
	})
}

func (cmd *ImportCmd) options() (importer.Options, error) {
	opts := importer.DefaultOptions()
	opts.ClassSubstring = cmd.ClassSubstring
	opts.DateFormat = cmd.DateFormat
	opts.Negate = cmd.Negate
	opts.AllowMatching = cmd.AllowMatching

	if cmd.Delimiter != "" {
		runes := []rune(cmd.Delimiter)
		if len(runes) != 1 {
			return opts, fmt.Errorf("delimiter must be a single character, got %q", cmd.Delimiter)
		}
		opts.Delimiter = runes[0]
	}

	if cmd.Scale != 0 {
		opts.Scale = cmd.Scale
	}

	return opts, nil
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
