// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
