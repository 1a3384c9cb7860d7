// Package report persists frequency rankings to disk.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"wordmill/internal/analysis"
	"wordmill/internal/logging"
)

const (
	rankingHeader    = "Top Word Frequencies"
	rankingSeparator = "===================="

	lockRetryDelay = 100 * time.Millisecond
	lockWait       = 5 * time.Second
)

// Writer saves rankings as plain-text reports. A sidecar file lock
// serializes concurrent runs that share an output path, so the slower run
// overwrites cleanly instead of interleaving.
type Writer struct {
	logger *slog.Logger
}

// NewWriter returns a Writer logging through the supplied logger.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logging.NewComponentLogger(logger, "report")}
}

// Write renders entries to path, creating parent directories as needed and
// replacing any previous report.
func (w *Writer) Write(ctx context.Context, path string, entries []analysis.Entry) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("report path must not be empty")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire report lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("report %s is locked by another run", path)
	}
	defer lock.Unlock() //nolint:errcheck

	if err := os.WriteFile(path, []byte(render(entries)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w.logger.Debug("ranking written", logging.Args(
		logging.String("path", path),
		logging.Int("entries", len(entries)),
	)...)
	return nil
}

func render(entries []analysis.Entry) string {
	var b strings.Builder
	b.WriteString(rankingHeader)
	b.WriteByte('\n')
	b.WriteString(rankingSeparator)
	b.WriteByte('\n')
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s\t%d\n", entry.Token, entry.Count)
	}
	return b.String()
}
