// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is the table type pallets keep their per-account state in.
//
// A key that was never written reads as the zero value of [V]. Callers never
// need to distinguish "missing" from "zero" to apply state transitions, so
// [Get] hides the difference and [GetOk] is available when it matters.
//
// Map is not safe for concurrent use.
type Map[K constraints.Ordered, V any] struct {
	data map[K]V
}

func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]V)}
}

// Get returns the value stored at [key] or the zero value of [V] if there is
// no entry.
func (m *Map[K, V]) Get(key K) V {
	return m.data[key]
}

// GetOk returns the value stored at [key] and whether an entry exists.
func (m *Map[K, V]) GetOk(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Map[K, V]) Put(key K, value V) {
	m.data[key] = value
}

func (m *Map[K, V]) Len() int {
	return len(m.data)
}

// Keys returns all keys with an entry in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := maps.Keys(m.data)
	slices.Sort(keys)
	return keys
}

// Range calls [f] for every entry in ascending key order until [f] returns
// false.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	for _, k := range m.Keys() {
		if !f(k, m.data[k]) {
			return
		}
	}
}
