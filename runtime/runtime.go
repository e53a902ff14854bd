// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime composes the pallets into the single state container a
// driver interacts with.
package runtime

import (
	"github.com/ava-labs/palletvm/pallet"
	"github.com/ava-labs/palletvm/pallets/balances"
	"github.com/ava-labs/palletvm/pallets/system"
)

// Runtime owns exactly one instance of every pallet. The type parameters are
// fixed once here and passed to every pallet, so all pallets of a runtime
// share the same account, balance, block number and nonce types.
//
// Pallets never call each other. Sequencing operations across pallets, such
// as incrementing a nonce before a transfer, is left to the caller.
type Runtime[A pallet.AccountID, B pallet.Balance, N pallet.BlockNumber, Nc pallet.Nonce] struct {
	system   *system.Pallet[A, N, Nc]
	balances *balances.Pallet[A, B]
}

// Default is the canonical configuration: string accounts, uint64 balances and
// uint32 block numbers and nonces.
type Default = Runtime[string, uint64, uint32, uint32]

// DefaultSnapshot is the snapshot of a [Default] runtime.
type DefaultSnapshot = Snapshot[string, uint64, uint32, uint32]

func New[A pallet.AccountID, B pallet.Balance, N pallet.BlockNumber, Nc pallet.Nonce]() *Runtime[A, B, N, Nc] {
	return &Runtime[A, B, N, Nc]{
		system:   system.New[A, N, Nc](),
		balances: balances.New[A, B](),
	}
}

func NewDefault() *Default {
	return New[string, uint64, uint32, uint32]()
}

func (r *Runtime[A, B, N, Nc]) System() *system.Pallet[A, N, Nc] {
	return r.system
}

func (r *Runtime[A, B, N, Nc]) Balances() *balances.Pallet[A, B] {
	return r.balances
}
