// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pallet declares the types every pallet in a runtime is
// parameterized over. A runtime picks one concrete type for each of them and
// instantiates all of its pallets with the same choice, so the pallets always
// agree on what an account, a balance, a block number and a nonce are.
package pallet

import "golang.org/x/exp/constraints"

// AccountID identifies a participant of the ledger. It must be totally
// ordered so state can be iterated deterministically.
type AccountID interface {
	constraints.Ordered
}

// Balance is an amount of value held by an account. Only unsigned integers
// are accepted so a stored balance can never be negative.
type Balance interface {
	constraints.Unsigned
}

// BlockNumber is the height of the chain.
type BlockNumber interface {
	constraints.Unsigned
}

// Nonce counts the transactions sent by an account.
type Nonce interface {
	constraints.Unsigned
}

// Zero returns the additive identity of [T].
func Zero[T constraints.Unsigned]() T {
	var zero T
	return zero
}

// One returns the value one of [T].
func One[T constraints.Unsigned]() T {
	return T(1)
}
