// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

// Package stream turns standard input or a list of files into one lazy
// sequence of lines, the way conventional multi-file line tools do.
package stream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const progressInterval = 100000

// Source streams lines from its inputs, concatenated in argument order.
// An input named "-" means standard input; an empty input list is the
// same as a single "-". The source is consumed exactly once.
type Source struct {
	logger     *zap.Logger
	stdin      io.Reader
	inputs     []string
	pos        int
	file       *os.File
	reader     *bufio.Reader
	linesRead  int
	eofReached bool
}

// New creates a Source over the given inputs. stdin is the reader used
// for "-" entries, normally os.Stdin.
func New(inputs []string, stdin io.Reader, logger *zap.Logger) *Source {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	return &Source{
		logger: logger,
		stdin:  stdin,
		inputs: inputs,
	}
}

// Next returns the next line with its trailing newline stripped, or
// io.EOF once every input is exhausted. A line with no content is still
// a line and is returned as an empty slice.
func (s *Source) Next() ([]byte, error) {
	if s.eofReached {
		return nil, io.EOF
	}
	for {
		if s.reader == nil {
			if err := s.advance(); err != nil {
				return nil, err
			}
		}
		line, err := s.reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			// Current input is done; a final line without a trailing
			// newline still counts.
			s.closeCurrent()
			if len(line) > 0 {
				return s.emit(line), nil
			}
			continue
		}
		if err != nil {
			s.eofReached = true
			s.closeCurrent()
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		return s.emit(line), nil
	}
}

// LinesRead returns the number of lines handed out so far. After Next
// returns a line, this is that line's 1-based position in the stream.
func (s *Source) LinesRead() int {
	return s.linesRead
}

// Close releases the currently open file, if any. Calling Next again
// after Close is not supported.
func (s *Source) Close() error {
	s.eofReached = true
	if s.file != nil {
		f := s.file
		s.file = nil
		s.reader = nil
		return f.Close()
	}
	return nil
}

func (s *Source) advance() error {
	if s.pos >= len(s.inputs) {
		s.eofReached = true
		return io.EOF
	}
	name := s.inputs[s.pos]
	s.pos++
	if name == "-" {
		s.logger.Info("Reading events from standard input")
		s.reader = bufio.NewReader(s.stdin)
		return nil
	}
	f, err := os.Open(name)
	if err != nil {
		s.eofReached = true
		return fmt.Errorf("cannot open input file: %w", err)
	}
	s.logger.Info("Reading events from file", zap.String("file", name))
	s.file = f
	s.reader = bufio.NewReader(f)
	return nil
}

func (s *Source) closeCurrent() {
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.reader = nil
}

func (s *Source) emit(line []byte) []byte {
	s.linesRead++
	if s.linesRead%progressInterval == 0 {
		s.logger.Info("Scan progress", zap.Int("line_count", s.linesRead))
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
