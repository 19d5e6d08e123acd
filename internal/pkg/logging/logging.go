// Package logging builds the slog logger shared by every component.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New.
type Options struct {
	// Level is a slog level name such as "debug" or "warn".
	Level string

	// Format is FormatText or FormatJSON.
	Format string

	// File, when set, also receives every record as JSON.
	File string
}

// New builds a logger writing to w in the configured format. The returned
// close function releases the log file and is safe to call when there is none.
//
// Example:
//
//	logger, closeLog, err := logging.New(logging.Options{Level: "info", Format: "json"}, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	defer closeLog()
func New(opts Options, w io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch strings.ToLower(opts.Format) {
	case FormatJSON:
		primary = slog.NewJSONHandler(w, handlerOpts)
	case FormatText, "":
		primary = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("log format %q is not supported", opts.Format)
	}

	if opts.File == "" {
		return slog.New(primary), func() error { return nil }, nil
	}

	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slogmulti.Fanout(
		primary,
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level, AddSource: true}),
	)

	return slog.New(handler), func() error {
		return errors.Join(file.Sync(), file.Close())
	}, nil
}
