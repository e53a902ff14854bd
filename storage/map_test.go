// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapDefaultOnLookup(t *testing.T) {
	require := require.New(t)

	m := New[string, uint64]()
	require.Zero(m.Get("alice"))
	v, ok := m.GetOk("alice")
	require.False(ok)
	require.Zero(v)
	require.Zero(m.Len())

	m.Put("alice", 0)
	v, ok = m.GetOk("alice")
	require.True(ok)
	require.Zero(v)
	require.Equal(1, m.Len())

	m.Put("alice", 42)
	require.Equal(uint64(42), m.Get("alice"))
	require.Equal(1, m.Len())
}

func TestMapOrderedIteration(t *testing.T) {
	require := require.New(t)

	m := New[string, int]()
	for i, k := range []string{"charlie", "alice", "bob"} {
		m.Put(k, i)
	}
	require.Equal([]string{"alice", "bob", "charlie"}, m.Keys())

	var (
		keys   []string
		values []int
	)
	m.Range(func(k string, v int) bool {
		keys = append(keys, k)
		values = append(values, v)
		return true
	})
	require.Equal([]string{"alice", "bob", "charlie"}, keys)
	require.Equal([]int{1, 2, 0}, values)

	var visited int
	m.Range(func(string, int) bool {
		visited++
		return false
	})
	require.Equal(1, visited)
}

func TestMapEmptyKeys(t *testing.T) {
	require := require.New(t)

	m := New[uint32, uint32]()
	require.Empty(m.Keys())
}
