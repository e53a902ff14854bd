// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name      = "palletvm"
	Namespace = "palletvm"
	Version   = "v0.0.1"

	// Accounts used by the demonstration plan and the default genesis.
	Alice   = "alice"
	Bob     = "bob"
	Charlie = "charlie"

	GenesisBalance uint64 = 100

	MaxUint64 = ^uint64(0)
)
