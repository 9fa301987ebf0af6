// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

// Package spanevent defines the span lifecycle event record and its
// decoding from line-delimited JSON.
package spanevent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// TypeNew marks an event that opens a span. Every other type value is a
// close; there is no whitelist of close keywords.
const TypeNew = "new"

// Event is one decoded span lifecycle record.
type Event struct {
	Type string
	Span Key
}

// Opens reports whether the event opens its span.
func (e Event) Opens() bool {
	return e.Type == TypeNew
}

// Decode parses a single input line as a span lifecycle event. The line
// must hold exactly one JSON object with a string "type" and an array
// "span"; anything else is an error that aborts the run.
func Decode(line []byte) (Event, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var raw struct {
		Type *string         `json:"type"`
		Span json.RawMessage `json:"span"`
	}
	if err := dec.Decode(&raw); err != nil {
		return Event{}, fmt.Errorf("cannot decode event: %w", err)
	}
	if dec.More() {
		return Event{}, errors.New("trailing data after event")
	}
	if raw.Type == nil {
		return Event{}, errors.New(`event has no "type" field`)
	}
	if raw.Span == nil {
		return Event{}, errors.New(`event has no "span" field`)
	}

	key, err := NewKey(raw.Span)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: *raw.Type, Span: key}, nil
}
