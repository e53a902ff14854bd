// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package system is the system pallet. It tracks the block height of the chain
// and the nonce of each account, and knows nothing about balances.
package system

import (
	"fmt"

	"github.com/ava-labs/palletvm/pallet"
	"github.com/ava-labs/palletvm/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type Pallet[A pallet.AccountID, N pallet.BlockNumber, Nc pallet.Nonce] struct {
	blockNumber N
	nonces      *storage.Map[A, Nc]
}

func New[A pallet.AccountID, N pallet.BlockNumber, Nc pallet.Nonce]() *Pallet[A, N, Nc] {
	return &Pallet[A, N, Nc]{
		blockNumber: pallet.Zero[N](),
		nonces:      storage.New[A, Nc](),
	}
}

func (p *Pallet[A, N, Nc]) BlockNumber() N {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one.
//
// Counters never wrap: incrementing past the maximum value of [N] returns
// [ErrOverflow] and leaves the block number unchanged.
func (p *Pallet[A, N, Nc]) IncBlockNumber() error {
	next, err := smath.Add(p.blockNumber, pallet.One[N]())
	if err != nil {
		return fmt.Errorf("%w: block number %d", ErrOverflow, p.blockNumber)
	}
	p.blockNumber = next
	return nil
}

// Nonce returns the nonce of [who], or zero if [who] has never sent a
// transaction.
func (p *Pallet[A, N, Nc]) Nonce(who A) Nc {
	return p.nonces.Get(who)
}

// IncNonce increments the nonce of [who] by one. Like the block number, a
// nonce never wraps.
func (p *Pallet[A, N, Nc]) IncNonce(who A) error {
	nonce := p.nonces.Get(who)
	next, err := smath.Add(nonce, pallet.One[Nc]())
	if err != nil {
		return fmt.Errorf("%w: nonce %d of %v", ErrOverflow, nonce, who)
	}
	p.nonces.Put(who, next)
	return nil
}

// Accounts returns every account with a stored nonce in ascending order.
func (p *Pallet[A, N, Nc]) Accounts() []A {
	return p.nonces.Keys()
}
