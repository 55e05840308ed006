// SPDX-License-Identifier: MIT
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is shared by every package; it discards output until Initialize runs
var Logger = log.NewWithOptions(io.Discard, log.Options{})

// Initialize sets up Logger with a level ("debug", "info", "warn", "error")
// and a format ("text", "json", "logfmt"). A nil writer means stderr.
func Initialize(level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	formatter, err := parseFormat(format)
	if err != nil {
		return err
	}

	Logger = log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "palettekit",
	})
	return nil
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("invalid log format %q", format)
}
