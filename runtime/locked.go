// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"sync"

	"github.com/ava-labs/palletvm/pallet"
)

// Locked guards a whole [Runtime] with one lock. Pallets are never locked
// individually: a transfer must observe and update the ledger as one unit.
type Locked[A pallet.AccountID, B pallet.Balance, N pallet.BlockNumber, Nc pallet.Nonce] struct {
	l sync.Mutex
	r *Runtime[A, B, N, Nc]
}

// NewLocked takes ownership of [r]. The caller must not use [r] directly
// afterwards.
func NewLocked[A pallet.AccountID, B pallet.Balance, N pallet.BlockNumber, Nc pallet.Nonce](
	r *Runtime[A, B, N, Nc],
) *Locked[A, B, N, Nc] {
	return &Locked[A, B, N, Nc]{r: r}
}

// Do runs [f] with exclusive access to the runtime. [f] must not retain the
// runtime after it returns.
func (l *Locked[A, B, N, Nc]) Do(f func(*Runtime[A, B, N, Nc]) error) error {
	l.l.Lock()
	defer l.l.Unlock()

	return f(l.r)
}

func (l *Locked[A, B, N, Nc]) Snapshot() Snapshot[A, B, N, Nc] {
	l.l.Lock()
	defer l.l.Unlock()

	return l.r.Snapshot()
}
