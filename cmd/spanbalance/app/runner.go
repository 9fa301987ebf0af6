// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

// Package app holds the configuration and the single-pass runner of the
// spanbalance command.
package app

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tracetools/spanbalance/internal/balance"
	"github.com/tracetools/spanbalance/internal/report"
	"github.com/tracetools/spanbalance/internal/spanevent"
	"github.com/tracetools/spanbalance/internal/stream"
)

// Run executes one pass over the input: every line is decoded as a span
// lifecycle event and applied to the balance tracker, then the
// identifiers with a positive balance are written to stdout. Inputs are
// file names, "-" for standard input; an empty list means standard input.
//
// A malformed line aborts the run with an error naming the line. A
// downstream reader closing stdout early is not an error.
func Run(cfg *Config, inputs []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	format, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	src := stream.New(inputs, stdin, logger)
	defer src.Close()

	tracker := balance.New()
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		ev, err := spanevent.Decode(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", src.LinesRead(), err)
		}
		tracker.Apply(ev)
	}
	logger.Info("Input exhausted",
		zap.Int("lines", src.LinesRead()),
		zap.Int("spans", tracker.Len()))

	if cfg.DumpCounts {
		tracker.Each(func(key spanevent.Key, count int) {
			logger.Info("Final balance",
				zap.Stringer("span", key),
				zap.Int("balance", count))
		})
	}

	return report.New(stdout, format, logger).Write(tracker.Open())
}
