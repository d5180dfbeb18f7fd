// Package observability builds the structured logger shared by the console components.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/conn-castle/console/internal/messages"
)

// ParseLevel parses debug, info, warn, or error (case-insensitive).
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf(messages.ObservabilityBadLevelFmt, level, err)
	}
	return parsed, nil
}

// NewLogger returns a text logger writing to w at the given level.
// A nil writer yields a logger that discards everything.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	if w == nil {
		return Discard(), nil
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parsed})), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
