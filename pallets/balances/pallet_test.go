// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	alice   = "alice"
	bob     = "bob"
	charlie = "charlie"
)

func TestInitBalances(t *testing.T) {
	require := require.New(t)

	p := New[string, uint64]()
	require.Zero(p.Balance(alice))
	require.Zero(p.Balance(bob))

	p.SetBalance(alice, 100)
	require.Equal(uint64(100), p.Balance(alice))
	require.Zero(p.Balance(bob))

	p.SetBalance(alice, 7)
	require.Equal(uint64(7), p.Balance(alice))
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name        string
		genesis     map[string]uint64
		from        string
		to          string
		amount      uint64
		expectedErr error
		expected    map[string]uint64
	}{
		{
			name:     "moves value",
			genesis:  map[string]uint64{alice: 100},
			from:     alice,
			to:       bob,
			amount:   30,
			expected: map[string]uint64{alice: 70, bob: 30},
		},
		{
			name:     "drains sender",
			genesis:  map[string]uint64{alice: 100, bob: 5},
			from:     alice,
			to:       bob,
			amount:   100,
			expected: map[string]uint64{alice: 0, bob: 105},
		},
		{
			name:        "insufficient balance",
			genesis:     map[string]uint64{alice: 50},
			from:        alice,
			to:          bob,
			amount:      1000,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint64{alice: 50, bob: 0},
		},
		{
			name:        "unknown sender",
			genesis:     map[string]uint64{},
			from:        charlie,
			to:          bob,
			amount:      1,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint64{charlie: 0, bob: 0},
		},
		{
			name:        "receiver overflow",
			genesis:     map[string]uint64{alice: 10, bob: ^uint64(0) - 5},
			from:        alice,
			to:          bob,
			amount:      10,
			expectedErr: ErrOverflow,
			expected:    map[string]uint64{alice: 10, bob: ^uint64(0) - 5},
		},
		{
			name:     "zero amount",
			genesis:  map[string]uint64{},
			from:     alice,
			to:       bob,
			amount:   0,
			expected: map[string]uint64{alice: 0, bob: 0},
		},
		{
			name:     "self transfer",
			genesis:  map[string]uint64{alice: 40},
			from:     alice,
			to:       alice,
			amount:   40,
			expected: map[string]uint64{alice: 40},
		},
		{
			name:        "self transfer insufficient",
			genesis:     map[string]uint64{alice: 40},
			from:        alice,
			to:          alice,
			amount:      41,
			expectedErr: ErrInsufficientBalance,
			expected:    map[string]uint64{alice: 40},
		},
		{
			name:     "self transfer at max balance",
			genesis:  map[string]uint64{alice: ^uint64(0)},
			from:     alice,
			to:       alice,
			amount:   ^uint64(0),
			expected: map[string]uint64{alice: ^uint64(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			p := New[string, uint64]()
			for who, bal := range tt.genesis {
				p.SetBalance(who, bal)
			}

			err := p.Transfer(tt.from, tt.to, tt.amount)
			require.ErrorIs(err, tt.expectedErr)
			for who, bal := range tt.expected {
				require.Equal(bal, p.Balance(who), who)
			}
		})
	}
}

func TestTransferConservesValue(t *testing.T) {
	require := require.New(t)

	p := New[string, uint8]()
	p.SetBalance(alice, 200)
	p.SetBalance(bob, 50)

	for _, amount := range []uint8{0, 1, 17, 100, 250} {
		before := uint16(p.Balance(alice)) + uint16(p.Balance(bob))
		fromBefore, toBefore := p.Balance(alice), p.Balance(bob)

		err := p.Transfer(alice, bob, amount)
		after := uint16(p.Balance(alice)) + uint16(p.Balance(bob))
		require.Equal(before, after)
		if err != nil {
			require.Equal(fromBefore, p.Balance(alice))
			require.Equal(toBefore, p.Balance(bob))
			continue
		}
		require.Equal(fromBefore-amount, p.Balance(alice))
		require.Equal(toBefore+amount, p.Balance(bob))
	}
}

func TestTransferOverflowNarrowBalance(t *testing.T) {
	require := require.New(t)

	p := New[string, uint8]()
	p.SetBalance(alice, 10)
	p.SetBalance(bob, 250)

	err := p.Transfer(alice, bob, 6)
	require.ErrorIs(err, ErrOverflow)
	require.Equal(uint8(10), p.Balance(alice))
	require.Equal(uint8(250), p.Balance(bob))

	require.NoError(p.Transfer(alice, bob, 5))
	require.Equal(uint8(5), p.Balance(alice))
	require.Equal(uint8(255), p.Balance(bob))
}

func TestTotalIssuance(t *testing.T) {
	require := require.New(t)

	p := New[string, uint8]()
	total, err := p.TotalIssuance()
	require.NoError(err)
	require.Zero(total)

	p.SetBalance(alice, 100)
	p.SetBalance(bob, 100)
	total, err = p.TotalIssuance()
	require.NoError(err)
	require.Equal(uint8(200), total)
	require.Equal([]string{alice, bob}, p.Accounts())

	p.SetBalance(charlie, 100)
	_, err = p.TotalIssuance()
	require.ErrorIs(err, ErrOverflow)
}
