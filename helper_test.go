// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/comb"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// waitCount waits with adaptive backoff until c reaches at least want.
// Submit is asynchronous from the caller's point of view; tests use the
// executed count as the completion boundary.
func waitCount(c *atomix.Int64, want int64) {
	var bo iox.Backoff
	for c.Load() < want {
		bo.Wait()
	}
}

// execExpr drives a protocol to completion on ex via Step+Advance loop.
// Retries on iox.ErrWouldBlock (combiner has not executed the op yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[S, R any](ex *comb.Executor[S], protocol kont.Expr[R]) R {
	result, susp := comb.Step(protocol)
	for susp != nil {
		var err error
		result, susp, err = comb.Advance(ex, susp)
		if err != nil {
			continue
		}
	}
	return result
}
