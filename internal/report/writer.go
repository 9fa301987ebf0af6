// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

// Package report emits the set of still-open span identifiers.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/tracetools/spanbalance/internal/spanevent"
)

// Format selects the serialization of the open-span report.
type Format string

const (
	// FormatJSONL writes one JSON-encoded span identifier per line.
	FormatJSONL Format = "jsonl"
	// FormatJSON writes a single JSON array of span identifiers.
	FormatJSON Format = "json"
)

// ParseFormat converts an --output-format flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSONL:
		return FormatJSONL, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q, expected jsonl or json", s)
}

// Writer emits the open-span report to an output stream.
type Writer struct {
	out    io.Writer
	format Format
	logger *zap.Logger
}

// New creates a Writer for the given stream and format.
func New(out io.Writer, format Format, logger *zap.Logger) *Writer {
	return &Writer{
		out:    out,
		format: format,
		logger: logger,
	}
}

// Write emits the given span identifiers in the configured format. The
// identifiers are emitted in the order given; callers must not rely on
// any particular order. A downstream reader that has closed the pipe
// stops emission early and counts as success; every other write error
// propagates unmodified.
func (w *Writer) Write(keys []spanevent.Key) error {
	err := w.emit(keys)
	if errors.Is(err, syscall.EPIPE) {
		w.logger.Debug("Downstream reader closed the pipe, stopping")
		return nil
	}
	return err
}

func (w *Writer) emit(keys []spanevent.Key) error {
	if w.format == FormatJSON {
		buf, err := json.Marshal(keys)
		if err != nil {
			return fmt.Errorf("cannot encode open-span report: %w", err)
		}
		buf = append(buf, '\n')
		if _, err := w.out.Write(buf); err != nil {
			return fmt.Errorf("cannot write open-span report: %w", err)
		}
		return nil
	}
	for _, key := range keys {
		if _, err := fmt.Fprintf(w.out, "%s\n", key.Canonical()); err != nil {
			return fmt.Errorf("cannot write open-span report: %w", err)
		}
	}
	return nil
}
