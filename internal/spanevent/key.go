// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package spanevent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Key is a span identifier: an ordered sequence of JSON scalars compared
// structurally. Two keys are equal iff their elements are equal in order.
// The compact JSON encoding of the sequence is the canonical form used
// for map lookups and for output.
type Key struct {
	canonical string
	elems     []any
}

// NewKey builds a Key from the raw JSON of a "span" field. The value must
// be an array of scalars. Numbers are kept as json.Number so that large
// integers survive canonicalization unchanged.
func NewKey(raw json.RawMessage) (Key, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Key{}, errors.New(`"span" is not an array`)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return Key{}, fmt.Errorf(`cannot decode "span" array: %w`, err)
	}
	for i, el := range elems {
		switch el.(type) {
		case string, json.Number, bool, nil:
		default:
			return Key{}, fmt.Errorf(`"span" element %d is not a scalar`, i)
		}
	}

	canonical, err := json.Marshal(elems)
	if err != nil {
		return Key{}, fmt.Errorf("cannot canonicalize span identifier: %w", err)
	}
	return Key{canonical: string(canonical), elems: elems}, nil
}

// Canonical returns the compact JSON form of the identifier, suitable as
// a map key.
func (k Key) Canonical() string {
	return k.canonical
}

// Len returns the number of elements in the identifier.
func (k Key) Len() int {
	return len(k.elems)
}

func (k Key) String() string {
	return k.canonical
}

// MarshalJSON emits the canonical form, so a Key serializes back to the
// same array it was decoded from.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.canonical == "" {
		return []byte("[]"), nil
	}
	return []byte(k.canonical), nil
}
