// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletvm/consts"
)

type Action string

const (
	// Overwrite the balance of [Step.Account] with [Step.Amount].
	SetBalance Action = "set_balance"
	// Advance the block number by one.
	IncBlockNumber Action = "inc_block_number"
	// Increment the nonce of [Step.Account].
	IncNonce Action = "inc_nonce"
	// Transfer [Step.Amount] from [Step.Account] to [Step.To].
	Transfer Action = "transfer"
	// Capture a snapshot of the runtime.
	Inspect Action = "inspect"
)

// Plan is an ordered list of calls into a runtime.
type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Description string   `yaml:"description,omitempty"`
	Action      Action   `yaml:"action"`
	Account     string   `yaml:"account,omitempty"`
	To          string   `yaml:"to,omitempty"`
	Amount      uint64   `yaml:"amount,omitempty"`
	Require     *Require `yaml:"require,omitempty"`
}

// Require holds assertions checked after a step has run.
type Require struct {
	Balances    map[string]uint64 `yaml:"balances,omitempty"`
	Nonces      map[string]uint32 `yaml:"nonces,omitempty"`
	BlockNumber *uint32           `yaml:"blockNumber,omitempty"`
	// Err names the error the step must fail with. See [ErrorName].
	Err string `yaml:"err,omitempty"`
}

func Load(b []byte) (*Plan, error) {
	p := &Plan{}
	if err := yaml.UnmarshalStrict(b, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: no steps found", ErrInvalidPlan)
	}
	for i := range p.Steps {
		if err := verifyStep(i, &p.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

func verifyStep(i int, step *Step) error {
	switch step.Action {
	case SetBalance, IncNonce:
		if len(step.Account) == 0 {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, ErrMissingAccount)
		}
	case Transfer:
		if len(step.Account) == 0 || len(step.To) == 0 {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, ErrMissingAccount)
		}
	case IncBlockNumber, Inspect:
	default:
		return fmt.Errorf("%w %d: %w %q", ErrInvalidStep, i, ErrUnknownAction, step.Action)
	}
	if step.Require != nil && len(step.Require.Err) > 0 {
		if _, ok := errorsByName[step.Require.Err]; !ok {
			return fmt.Errorf("%w %d: %w %q", ErrInvalidStep, i, ErrUnknownError, step.Require.Err)
		}
	}
	return nil
}

func uint32Ptr(v uint32) *uint32 {
	return &v
}

// DemoPlan seeds alice, advances one block and sends two transfers from
// alice, each preceded by a nonce increment.
func DemoPlan() *Plan {
	return &Plan{
		Name:        "demo",
		Description: "genesis balance, one block, two transfers",
		Steps: []Step{
			{
				Description: "genesis balance",
				Action:      SetBalance,
				Account:     consts.Alice,
				Amount:      consts.GenesisBalance,
				Require:     &Require{Balances: map[string]uint64{consts.Alice: consts.GenesisBalance}},
			},
			{
				Description: "start block",
				Action:      IncBlockNumber,
				Require:     &Require{BlockNumber: uint32Ptr(1)},
			},
			{
				Description: "first transaction nonce",
				Action:      IncNonce,
				Account:     consts.Alice,
				Require:     &Require{Nonces: map[string]uint32{consts.Alice: 1}},
			},
			{
				Description: "first transaction",
				Action:      Transfer,
				Account:     consts.Alice,
				To:          consts.Bob,
				Amount:      30,
				Require: &Require{Balances: map[string]uint64{
					consts.Alice: 70,
					consts.Bob:   30,
				}},
			},
			{
				Description: "second transaction nonce",
				Action:      IncNonce,
				Account:     consts.Alice,
				Require:     &Require{Nonces: map[string]uint32{consts.Alice: 2}},
			},
			{
				Description: "second transaction",
				Action:      Transfer,
				Account:     consts.Alice,
				To:          consts.Charlie,
				Amount:      20,
				Require: &Require{Balances: map[string]uint64{
					consts.Alice:   50,
					consts.Charlie: 20,
				}},
			},
			{
				Description: "final state",
				Action:      Inspect,
			},
		},
	}
}
