// Package loader reads journal files and hands them to the parser, with
// optional resolution of include directives.
//
// An include line has the form:
//
//	include other.journal
//	!include "2024/january.journal"
//
// Paths are resolved relative to the directory of the including file, and
// a file included more than once is expanded only the first time.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"plainledger/journal"
	"plainledger/telemetry"
)

var includePattern = regexp.MustCompile(`(?i)^(?:include|!include)\s+["']?(.+?)["']?\s*$`)

// Loader reads and parses journal files.
type Loader struct {
	// FollowIncludes enables recursive expansion of include lines.
	FollowIncludes bool
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithFollowIncludes configures the loader to expand include lines
// recursively before parsing. When disabled, include lines are ordinary
// unparsable text and are ignored like any other garbage line.
func WithFollowIncludes() Option {
	return func(l *Loader) {
		l.FollowIncludes = true
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads filename, resolves includes when enabled, and parses the
// result into transactions.
func (l *Loader) Load(ctx context.Context, filename string) ([]*journal.Transaction, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, data)
}

// LoadBytes parses already-read journal content. The filename is used to
// resolve relative include paths and for error messages.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) ([]*journal.Transaction, error) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("load %s", filepath.Base(filename)))
	defer timer.End()

	text := string(data)
	if l.FollowIncludes {
		state := &expandState{visited: make(map[string]bool)}
		expanded, err := state.expand(ctx, text, filepath.Dir(filename))
		if err != nil {
			return nil, err
		}
		text = expanded
	}

	transactions, err := journal.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return transactions, nil
}

// expandState tracks visited files during recursive expansion.
type expandState struct {
	visited map[string]bool
}

func (s *expandState) expand(ctx context.Context, text, baseDir string) (string, error) {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		m := includePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			out = append(out, line)
			continue
		}

		path := strings.TrimSpace(m[1])
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		if s.visited[abs] {
			continue
		}
		s.visited[abs] = true

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("included file %q not found (resolved to %s)", m[1], path)
		}

		expanded, err := s.expand(ctx, string(data), filepath.Dir(path))
		if err != nil {
			return "", err
		}
		if expanded = strings.Trim(expanded, "\n"); expanded != "" {
			out = append(out, expanded)
		}
	}

	return strings.Join(out, "\n"), nil
}
