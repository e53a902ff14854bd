// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"errors"

	"github.com/ava-labs/palletvm/pallets/balances"
	"github.com/ava-labs/palletvm/pallets/system"
)

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrInvalidStep       = errors.New("invalid step")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownError      = errors.New("unknown error name")
	ErrMissingAccount    = errors.New("missing account")
	ErrRequirementFailed = errors.New("requirement failed")
	ErrUnexpectedSuccess = errors.New("step succeeded but was required to fail")
	ErrUnexpectedFailure = errors.New("step failed with an unexpected error")
)

// Names a plan can use in [Require.Err].
const (
	InsufficientBalance = "insufficient_balance"
	BalanceOverflow     = "balance_overflow"
	CounterOverflow     = "counter_overflow"
)

var errorsByName = map[string]error{
	InsufficientBalance: balances.ErrInsufficientBalance,
	BalanceOverflow:     balances.ErrOverflow,
	CounterOverflow:     system.ErrOverflow,
}

// ErrorName returns the plan name of [err], or the empty string if [err] is
// not a runtime error.
func ErrorName(err error) string {
	for name, target := range errorsByName {
		if errors.Is(err, target) {
			return name
		}
	}
	return ""
}
