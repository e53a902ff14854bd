// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import "errors"

var ErrOverflow = errors.New("counter overflow")
