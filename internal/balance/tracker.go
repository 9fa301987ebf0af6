// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

// Package balance maintains the running open-count per span identifier
// across a single pass over an event stream.
package balance

import (
	"github.com/tracetools/spanbalance/internal/spanevent"
)

type entry struct {
	key   spanevent.Key
	count int
}

// Tracker keeps one signed counter per span identifier. An identifier
// that was never seen has an implicit balance of zero. Entries are never
// removed, so a balance can go negative when closes outnumber opens.
//
// Tracker is not safe for concurrent use; the whole program is one
// sequential pass.
type Tracker struct {
	entries map[string]*entry
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{entries: make(map[string]*entry)}
}

// Apply adjusts the balance for the event's span identifier: +1 for an
// opening event, -1 for anything else.
func (t *Tracker) Apply(ev spanevent.Event) {
	e := t.entries[ev.Span.Canonical()]
	if e == nil {
		e = &entry{key: ev.Span}
		t.entries[ev.Span.Canonical()] = e
	}
	if ev.Opens() {
		e.count++
	} else {
		e.count--
	}
}

// Balance returns the current signed count for a span identifier.
func (t *Tracker) Balance(key spanevent.Key) int {
	if e := t.entries[key.Canonical()]; e != nil {
		return e.count
	}
	return 0
}

// Len returns the number of distinct span identifiers seen so far.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Open returns the identifiers whose balance is strictly positive, each
// exactly once, in map-iteration order. The order is not meaningful.
func (t *Tracker) Open() []spanevent.Key {
	open := make([]spanevent.Key, 0, len(t.entries))
	for _, e := range t.entries {
		if e.count > 0 {
			open = append(open, e.key)
		}
	}
	return open
}

// Each calls fn once per seen identifier with its final balance,
// including zero and negative balances.
func (t *Tracker) Each(fn func(key spanevent.Key, count int)) {
	for _, e := range t.entries {
		fn(e.key, e.count)
	}
}
