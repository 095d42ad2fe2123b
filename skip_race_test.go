// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package comb_test

import "testing"

// skipRace skips tests that drive the pending chain across goroutines.
// The race detector tracks per-variable happens-before and cannot see
// the atomix cross-variable memory ordering (tail swap publishes the
// node, link store publishes it to the consumer), producing false
// positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: MPSC transport uses cross-variable memory ordering")
}
