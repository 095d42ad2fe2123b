// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// combineHandler implements kont.Handler for combiner effects.
// Waits on the completion boundary, converting asynchronous dispatch
// into blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type combineHandler[S, R any] struct {
	ex *Executor[S]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the completion boundary with adaptive backoff.
func (h combineHandler[S, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(combineDispatcher[S])
	if !ok {
		panic("comb: unhandled effect in combineHandler")
	}
	return dispatchWait(h.ex, cop), true
}

// dispatchWait submits the operation and waits until the combiner has
// executed it, backing off adaptively (iox.Backoff). Must not be invoked
// from inside an action or continuation of the same executor: the waited
// ticket could then only complete on the waiting goroutine.
func dispatchWait[S any](ex *Executor[S], cop combineDispatcher[S]) kont.Resumed {
	tk := cop.DispatchCombine(ex)
	var bo iox.Backoff
	for tk.done.Load() == 0 {
		bo.Wait()
	}
	return tk.result
}

// Exec runs a Cont-world combine protocol against ex and returns its
// result. Blocks on the completion boundary via adaptive backoff
// (iox.Backoff), without spawning goroutines or creating channels.
func Exec[S, R any](ex *Executor[S], protocol kont.Eff[R]) R {
	h := combineHandler[S, R]{ex: ex}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world combine protocol against ex and returns its
// result. Blocks on the completion boundary via adaptive backoff
// (iox.Backoff), without spawning goroutines or creating channels.
func ExecExpr[S, R any](ex *Executor[S], protocol kont.Expr[R]) R {
	h := combineHandler[S, R]{ex: ex}
	return kont.HandleExpr(protocol, h)
}
