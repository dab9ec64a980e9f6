// Package logging configures Stencil's diagnostic output on top of
// charmbracelet/log.
//
// Diagnostics always go to stderr. Stdout carries rendered templates and
// other machine-readable output, so `stencil render ... > File.kt` never
// picks up log lines.
//
//	logging.Setup(verbose, quiet, logging.FormatText)
//	logger := logging.New("generate")
//	logger.Info("created file", "path", path)
//
// Setup must run before New: child loggers copy the default logger's level
// and formatter when they are created.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects how log records are encoded.
type Format string

const (
	// FormatText is the human-readable, colourised format.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
	// FormatLogfmt emits key=value pairs.
	FormatLogfmt Format = "logfmt"
)

// ParseFormat maps a user supplied name (as found in STENCIL_LOG_FORMAT) to a
// Format. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatLogfmt:
		return f, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q (want text, json or logfmt)", s)
	}
}

// Setup configures the default logger. Quiet takes precedence over verbose.
func Setup(verbose, quiet bool, format Format) {
	log.SetLevel(levelFor(verbose, quiet))
	log.SetOutput(os.Stderr)
	log.SetFormatter(formatterFor(format))
}

func levelFor(verbose, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

func formatterFor(format Format) log.Formatter {
	switch format {
	case FormatJSON:
		return log.JSONFormatter
	case FormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New returns a logger whose records carry the given component prefix.
// An empty component yields an unprefixed logger.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput redirects the default logger, mainly so tests can capture it.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
