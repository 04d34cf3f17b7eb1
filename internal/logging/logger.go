package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns the process-wide slog logger at the given level. Log lines
// go to stderr; stdout carries rendered tables, graphs and episodes only.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Collapse "error" attrs onto the shorter "err" key.
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
