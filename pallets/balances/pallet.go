// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balances is the ledger pallet. It is the only component that can
// move value between accounts.
package balances

import (
	"fmt"

	"github.com/ava-labs/palletvm/pallet"
	"github.com/ava-labs/palletvm/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type Pallet[A pallet.AccountID, B pallet.Balance] struct {
	balances *storage.Map[A, B]
}

func New[A pallet.AccountID, B pallet.Balance]() *Pallet[A, B] {
	return &Pallet[A, B]{
		balances: storage.New[A, B](),
	}
}

// SetBalance overwrites the balance of [who]. It performs no validation and
// is meant for genesis initialization only.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances.Put(who, amount)
}

// Balance returns the balance of [who], or zero if [who] has never held any.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances.Get(who)
}

// Transfer moves [amount] from [from] to [to].
//
// Both balances are computed before either is written, so a failed transfer
// leaves the table untouched.
func (p *Pallet[A, B]) Transfer(from A, to A, amount B) error {
	fromBal := p.balances.Get(from)
	newFrom, err := smath.Sub(fromBal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, from=%v, amount=%d)",
			ErrInsufficientBalance,
			fromBal,
			from,
			amount,
		)
	}
	if amount == pallet.Zero[B]() {
		return nil
	}

	// A self transfer credits the already debited balance.
	toBal := newFrom
	if from != to {
		toBal = p.balances.Get(to)
	}
	newTo, err := smath.Add(toBal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, to=%v, amount=%d)",
			ErrOverflow,
			toBal,
			to,
			amount,
		)
	}

	p.balances.Put(from, newFrom)
	p.balances.Put(to, newTo)
	return nil
}

// TotalIssuance sums every stored balance.
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	var (
		total B
		err   error
	)
	p.balances.Range(func(who A, bal B) bool {
		next, aerr := smath.Add(total, bal)
		if aerr != nil {
			err = fmt.Errorf("%w: total issuance exceeded at %v", ErrOverflow, who)
			return false
		}
		total = next
		return true
	})
	if err != nil {
		return pallet.Zero[B](), err
	}
	return total, nil
}

// Accounts returns every account with a stored balance in ascending order.
func (p *Pallet[A, B]) Accounts() []A {
	return p.balances.Keys()
}
