package importer

import (
	"errors"
	"strings"
	"time"
)

// fallbackLayouts is the broad date format list tried after the configured
// layout, in priority order: day-first, ISO, month-first, with-time forms,
// then single-digit and compact variants.
var fallbackLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"01/02/2006",
	"01-02-2006",
	"01.02.2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02T15:04:05",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"20060102",
}

var errUnparsableDate = errors.New("unparsable date")

// parseDate resolves a CSV date cell. The configured layout is tried
// first, then its separator variants, then the fallback list. The time of
// day, when present, is discarded.
func parseDate(s, layout string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, errUnparsableDate
	}

	for _, l := range layoutVariants(layout) {
		if d, err := time.Parse(l, v); err == nil {
			return midnight(d), nil
		}
	}
	for _, l := range fallbackLayouts {
		if d, err := time.Parse(l, v); err == nil {
			return midnight(d), nil
		}
	}
	return time.Time{}, errUnparsableDate
}

// layoutVariants returns the layout followed by copies with swapped date
// separators, skipping duplicates.
func layoutVariants(layout string) []string {
	variants := []string{layout}
	for _, alt := range []string{
		strings.ReplaceAll(layout, "/", "-"),
		strings.ReplaceAll(layout, "-", "/"),
		strings.ReplaceAll(layout, "/", "."),
		strings.ReplaceAll(layout, ".", "/"),
	} {
		if alt != layout {
			variants = append(variants, alt)
		}
	}
	return variants
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
