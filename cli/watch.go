package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"plainledger/ledger"
	"plainledger/report"
)

type WatchCmd struct {
	Filters []string `help:"Only include accounts whose name contains one of these." arg:"" optional:""`
	Depth   int      `help:"Fold accounts deeper than this many levels." default:"-1"`
	Empty   bool     `help:"Show accounts with a zero balance." short:"E"`
}

// Run watches the journal file and re-renders the balance report whenever
// it changes. Editors often save in multiple steps, so events are debounced
// before reloading.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	if globals.File.Filename == "<stdin>" {
		return fmt.Errorf("cannot watch a journal read from stdin")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	filename := globals.File.GetAbsoluteFilename()
	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printInfof(ctx.Stderr, "Watching %s", pathStyle.Render(filename))

	if err := cmd.render(runCtx, ctx, globals); err != nil {
		printError(ctx.Stderr, err.Error())
	}

	const debounceDelay = 100 * time.Millisecond

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)

	for {
		select {
		case <-runCtx.Done():
			return nil

		case <-reload:
			if err := cmd.render(runCtx, ctx, globals); err != nil {
				printError(ctx.Stderr, err.Error())
			}
			// Atomic saves replace the file, so the watch must be re-added.
			_ = watcher.Remove(filename)
			if err := watcher.Add(filename); err != nil {
				return fmt.Errorf("failed to re-watch %s: %w", filename, err)
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

func (cmd *WatchCmd) render(runCtx context.Context, ctx *kong.Context, globals *Globals) error {
	transactions, err := globals.loadJournal(runCtx)
	if err != nil {
		return err
	}

	leaves := ledger.Balances(transactions, cmd.Filters)
	tree := ledger.NewBalanceTree(leaves, cmd.Depth, cmd.Empty)

	_, _ = fmt.Fprintln(ctx.Stdout)
	printInfof(ctx.Stdout, "%s", time.Now().Format("2006/01/02 15:04:05"))
	_, _ = fmt.Fprint(ctx.Stdout, report.Balances(tree, globals.reportConfig()))
	return nil
}
