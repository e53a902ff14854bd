// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/palletvm/runtime"
)

// Result is the outcome of one step.
type Result struct {
	Index int
	Step  *Step
	// Err is the error returned by the runtime, if any. Runtime errors do not
	// stop a plan unless the step requires otherwise.
	Err error
	// Snapshot is only set for [Inspect] steps.
	Snapshot *runtime.DefaultSnapshot
}

// Runner drives one runtime. It is the only place where calls into separate
// pallets are sequenced.
type Runner struct {
	log     logging.Logger
	metrics *metrics
	rt      *runtime.Default
}

func NewRunner(log logging.Logger, rt *runtime.Default, registerer prometheus.Registerer) (*Runner, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		log:     log,
		metrics: m,
		rt:      rt,
	}
	r.metrics.blockNumber.Set(float64(rt.System().BlockNumber()))
	return r, nil
}

func (r *Runner) Runtime() *runtime.Default {
	return r.rt
}

// Run executes every step of [p] in order. It stops at the first failed
// requirement or when [ctx] is done.
func (r *Runner) Run(ctx context.Context, p *Plan) ([]*Result, error) {
	if err := p.Verify(); err != nil {
		return nil, err
	}
	r.log.Info("running plan",
		zap.String("name", p.Name),
		zap.String("description", p.Description),
		zap.Int("steps", len(p.Steps)),
	)

	results := make([]*Result, 0, len(p.Steps))
	for i := range p.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		step := &p.Steps[i]
		res := r.Execute(i, step)
		results = append(results, res)
		if err := r.check(res); err != nil {
			r.log.Error("plan aborted",
				zap.String("name", p.Name),
				zap.Int("step", i),
				zap.Error(err),
			)
			return results, err
		}
	}
	return results, nil
}

// Execute applies a single step to the runtime without checking its
// requirements.
func (r *Runner) Execute(i int, step *Step) *Result {
	res := &Result{Index: i, Step: step}
	switch step.Action {
	case SetBalance:
		r.rt.Balances().SetBalance(step.Account, step.Amount)
	case IncBlockNumber:
		res.Err = r.rt.System().IncBlockNumber()
		r.metrics.blockNumber.Set(float64(r.rt.System().BlockNumber()))
	case IncNonce:
		res.Err = r.rt.System().IncNonce(step.Account)
		if res.Err == nil {
			r.metrics.nonceIncrements.Inc()
		}
	case Transfer:
		res.Err = r.rt.Balances().Transfer(step.Account, step.To, step.Amount)
		if res.Err == nil {
			r.metrics.transfersSucceeded.Inc()
		} else {
			r.metrics.transfersFailed.Inc()
		}
	case Inspect:
		s := r.rt.Snapshot()
		res.Snapshot = &s
	default:
		res.Err = fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
	}
	r.metrics.stepsExecuted.Inc()

	fields := []zap.Field{
		zap.Int("step", i),
		zap.String("description", step.Description),
		zap.String("action", string(step.Action)),
		zap.String("account", step.Account),
		zap.String("to", step.To),
		zap.Uint64("amount", step.Amount),
		zap.Uint32("blockNumber", r.rt.System().BlockNumber()),
	}
	if res.Err != nil {
		r.log.Warn("step failed", append(fields, zap.Error(res.Err))...)
	} else {
		r.log.Info("step executed", fields...)
	}
	return res
}

func (r *Runner) check(res *Result) error {
	req := res.Step.Require
	if req == nil {
		return nil
	}
	if len(req.Err) > 0 {
		if res.Err == nil {
			return fmt.Errorf("%w: step %d expected %s", ErrUnexpectedSuccess, res.Index, req.Err)
		}
		if !errors.Is(res.Err, errorsByName[req.Err]) {
			return fmt.Errorf("%w: step %d expected %s, got %w", ErrUnexpectedFailure, res.Index, req.Err, res.Err)
		}
	}
	for who, expected := range req.Balances {
		if bal := r.rt.Balances().Balance(who); bal != expected {
			return fmt.Errorf("%w: step %d balance of %s is %d, expected %d", ErrRequirementFailed, res.Index, who, bal, expected)
		}
	}
	for who, expected := range req.Nonces {
		if nonce := r.rt.System().Nonce(who); nonce != expected {
			return fmt.Errorf("%w: step %d nonce of %s is %d, expected %d", ErrRequirementFailed, res.Index, who, nonce, expected)
		}
	}
	if req.BlockNumber != nil {
		if bn := r.rt.System().BlockNumber(); bn != *req.BlockNumber {
			return fmt.Errorf("%w: step %d block number is %d, expected %d", ErrRequirementFailed, res.Index, bn, *req.BlockNumber)
		}
	}
	return nil
}
