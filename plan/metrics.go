// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/palletvm/consts"
)

type metrics struct {
	stepsExecuted      prometheus.Counter
	transfersSucceeded prometheus.Counter
	transfersFailed    prometheus.Counter
	nonceIncrements    prometheus.Counter
	blockNumber        prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		stepsExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "steps_executed",
			Help:      "number of plan steps executed",
		}),
		transfersSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "transfers_succeeded",
			Help:      "number of transfers applied to the ledger",
		}),
		transfersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "transfers_failed",
			Help:      "number of transfers rejected by the ledger",
		}),
		nonceIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Namespace,
			Name:      "nonce_increments",
			Help:      "number of account nonce increments",
		}),
		blockNumber: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: consts.Namespace,
			Name:      "block_number",
			Help:      "current block number of the runtime",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.stepsExecuted),
		r.Register(m.transfersSucceeded),
		r.Register(m.transfersFailed),
		r.Register(m.nonceIncrements),
		r.Register(m.blockNumber),
	)
	return m, errs.Err
}
