package letters

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roach88/kringle/internal/engine"
	"github.com/roach88/kringle/internal/roster"
)

// Writer writes one letter file per giver under a timestamped directory,
// so repeated draws never overwrite each other.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock overrides the wall clock used for directory names.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a writer rooted at baseDir. The directory is created
// on first write.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{
		baseDir: baseDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteAll renders and writes every giver's letter into a fresh
// subdirectory named after the current time, and returns that directory's
// path. Nothing is printed or logged that would reveal an assignment.
func (w *Writer) WriteAll(r *roster.Roster, a *engine.Assignment) (string, error) {
	outDir := filepath.Join(w.baseDir, w.now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating letter directory: %w", err)
	}

	for _, pair := range a.Pairs() {
		letter, err := Render(r, pair.Recipient)
		if err != nil {
			return "", err
		}
		name := fileName(pair.Giver)
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(letter), 0o644); err != nil {
			return "", fmt.Errorf("writing letter for %q: %w", pair.Giver, err)
		}
		slog.Debug("letter written", "giver", pair.Giver, "file", name)
	}
	return outDir, nil
}

// fileName derives a letter file name from a participant name. Separators
// and NUL would break the path, so they become dashes.
func fileName(giver string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, giver)
	return safe + ".txt"
}
