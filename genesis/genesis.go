// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/runtime"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	ErrEmptyAccount      = errors.New("empty account")
	ErrDuplicateAccount  = errors.New("duplicate account")
	ErrSupplyOverflow    = errors.New("supply overflow")
	ErrInvalidBlockCount = errors.New("invalid initial block")
	ErrRuntimeNotEmpty   = errors.New("runtime already has accounts")
)

type Allocation struct {
	Account string `yaml:"account" json:"account"`
	Balance uint64 `yaml:"balance" json:"balance"`
}

// Genesis seeds a fresh runtime. Balances are written with SetBalance and so
// bypass transfer validation.
type Genesis struct {
	Allocations []*Allocation `yaml:"allocations" json:"allocations"`
	// InitialBlock is the block number the runtime starts at.
	InitialBlock uint32 `yaml:"initialBlock" json:"initialBlock"`
}

func Default() *Genesis {
	return &Genesis{
		Allocations: []*Allocation{
			{Account: consts.Alice, Balance: consts.GenesisBalance},
		},
	}
}

// Load parses a YAML (or JSON) genesis document and verifies it.
func Load(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if err := yaml.UnmarshalStrict(b, g); err != nil {
		return nil, err
	}
	if err := g.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genesis) Marshal() ([]byte, error) {
	return yaml.Marshal(g)
}

// Verify rejects allocations that could not have been produced by a valid
// ledger: nameless or repeated accounts, or a supply that does not fit.
func (g *Genesis) Verify() error {
	seen := make(map[string]struct{}, len(g.Allocations))
	supply := uint64(0)
	for i, alloc := range g.Allocations {
		if alloc == nil || len(alloc.Account) == 0 {
			return fmt.Errorf("%w: allocation %d", ErrEmptyAccount, i)
		}
		if _, ok := seen[alloc.Account]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, alloc.Account)
		}
		seen[alloc.Account] = struct{}{}

		var err error
		supply, err = safemath.Add[uint64](supply, alloc.Balance)
		if err != nil {
			return fmt.Errorf("%w: account=%s, bal=%d", ErrSupplyOverflow, alloc.Account, alloc.Balance)
		}
	}
	return nil
}

// Supply returns the sum of all allocations. It assumes [Verify] passed.
func (g *Genesis) Supply() uint64 {
	supply := uint64(0)
	for _, alloc := range g.Allocations {
		supply += alloc.Balance
	}
	return supply
}

// Initialize writes the genesis state into [r], which must be fresh: at block
// zero with no balance or nonce entries.
func (g *Genesis) Initialize(r *runtime.Default) error {
	if err := g.Verify(); err != nil {
		return err
	}
	if r.System().BlockNumber() != 0 {
		return fmt.Errorf("%w: runtime already at block %d", ErrInvalidBlockCount, r.System().BlockNumber())
	}
	if n := len(r.Balances().Accounts()) + len(r.System().Accounts()); n > 0 {
		return fmt.Errorf("%w: %d entries", ErrRuntimeNotEmpty, n)
	}
	for _, alloc := range g.Allocations {
		r.Balances().SetBalance(alloc.Account, alloc.Balance)
	}
	for i := uint32(0); i < g.InitialBlock; i++ {
		if err := r.System().IncBlockNumber(); err != nil {
			return err
		}
	}
	return nil
}
