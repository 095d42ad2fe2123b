// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Suspension is a pending combiner operation together with its in-flight
// ticket. The ticket is created by the first Advance call; retries after
// iox.ErrWouldBlock reuse it rather than submitting again.
type Suspension[R any] struct {
	inner *kont.Suspension[R]
	tk    *ticket
}

// Op returns the effect operation that caused the suspension.
func (s *Suspension[R]) Op() kont.Operation {
	return s.inner.Op()
}

// Step evaluates a combine protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *Suspension[R]) {
	result, susp := kont.StepExpr(protocol)
	if susp == nil {
		return result, nil
	}
	return result, &Suspension[R]{inner: susp}
}

// Advance dispatches the suspended combiner operation on ex. The first
// call submits the operation; the combiner executes it asynchronously.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the combiner has not executed the operation yet;
// the suspension is unconsumed and may be retried after the drain owner
// makes progress.
func Advance[S, R any](ex *Executor[S], susp *Suspension[R]) (R, *Suspension[R], error) {
	if susp.tk == nil {
		cop, ok := susp.inner.Op().(combineDispatcher[S])
		if !ok {
			panic("comb: unhandled effect in Advance")
		}
		susp.tk = cop.DispatchCombine(ex)
	}
	if susp.tk.done.Load() == 0 {
		var zero R
		return zero, susp, iox.ErrWouldBlock
	}
	result, next := susp.inner.Resume(susp.tk.result)
	if next == nil {
		return result, nil, nil
	}
	return result, &Suspension[R]{inner: next}, nil
}
