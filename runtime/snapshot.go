// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/palletvm/pallet"
)

// Account is one row of a [Snapshot].
type Account[A pallet.AccountID, B pallet.Balance, Nc pallet.Nonce] struct {
	ID      A  `yaml:"id"      json:"id"`
	Balance B  `yaml:"balance" json:"balance"`
	Nonce   Nc `yaml:"nonce"   json:"nonce"`
}

// Snapshot is a copy of the full runtime state meant for inspection. It is
// not a stable encoding.
type Snapshot[A pallet.AccountID, B pallet.Balance, N pallet.BlockNumber, Nc pallet.Nonce] struct {
	BlockNumber      N                   `yaml:"blockNumber"                json:"blockNumber"`
	TotalIssuance    B                   `yaml:"totalIssuance"              json:"totalIssuance"`
	IssuanceOverflow bool                `yaml:"issuanceOverflow,omitempty" json:"issuanceOverflow,omitempty"`
	Accounts         []Account[A, B, Nc] `yaml:"accounts"                   json:"accounts"`
}

// Snapshot copies the state of both pallets. Accounts known to either pallet
// are listed once, in ascending order, with implicit zeros filled in.
func (r *Runtime[A, B, N, Nc]) Snapshot() Snapshot[A, B, N, Nc] {
	ids := append(r.balances.Accounts(), r.system.Accounts()...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	accounts := make([]Account[A, B, Nc], 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, Account[A, B, Nc]{
			ID:      id,
			Balance: r.balances.Balance(id),
			Nonce:   r.system.Nonce(id),
		})
	}
	issuance, err := r.balances.TotalIssuance()
	return Snapshot[A, B, N, Nc]{
		BlockNumber:      r.system.BlockNumber(),
		TotalIssuance:    issuance,
		IssuanceOverflow: err != nil,
		Accounts:         accounts,
	}
}

// String renders the runtime state for humans.
func (r *Runtime[A, B, N, Nc]) String() string {
	return r.Snapshot().String()
}

func (s Snapshot[A, B, N, Nc]) String() string {
	var b strings.Builder
	b.WriteString("Runtime {\n")
	fmt.Fprintf(&b, "  system: { block_number: %d }\n", s.BlockNumber)
	if s.IssuanceOverflow {
		b.WriteString("  balances: { total_issuance: overflow }\n")
	} else {
		fmt.Fprintf(&b, "  balances: { total_issuance: %d }\n", s.TotalIssuance)
	}
	b.WriteString("  accounts: [\n")
	for _, acc := range s.Accounts {
		fmt.Fprintf(&b, "    { id: %v, balance: %d, nonce: %d },\n", acc.ID, acc.Balance, acc.Nonce)
	}
	b.WriteString("  ]\n}")
	return b.String()
}
