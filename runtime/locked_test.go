// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neilotoole/errgroup"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/palletvm/pallets/balances"
)

func TestLockedConcurrentTransfers(t *testing.T) {
	const (
		accounts  = 8
		workers   = 16
		transfers = 200
		genesis   = 1_000
	)
	require := require.New(t)

	r := NewDefault()
	for i := 0; i < accounts; i++ {
		r.Balances().SetBalance(fmt.Sprintf("acct-%d", i), genesis)
	}
	l := NewLocked(r)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < transfers; i++ {
				from := fmt.Sprintf("acct-%d", (w+i)%accounts)
				to := fmt.Sprintf("acct-%d", (w+2*i+1)%accounts)
				err := l.Do(func(r *Default) error {
					if err := r.System().IncNonce(from); err != nil {
						return err
					}
					return r.Balances().Transfer(from, to, uint64(i%50))
				})
				if err != nil && !errors.Is(err, balances.ErrInsufficientBalance) {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(g.Wait())

	s := l.Snapshot()
	require.False(s.IssuanceOverflow)
	require.Equal(uint64(accounts*genesis), s.TotalIssuance)

	var nonces uint64
	for _, acc := range s.Accounts {
		nonces += uint64(acc.Nonce)
	}
	require.Equal(uint64(workers*transfers), nonces)
}

func TestLockedPropagatesError(t *testing.T) {
	require := require.New(t)

	l := NewLocked(NewDefault())
	err := l.Do(func(r *Default) error {
		return r.Balances().Transfer("alice", "bob", 1)
	})
	require.ErrorIs(err, balances.ErrInsufficientBalance)
}
