// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// Apply is the effect operation for running a function of the shared state
// inside the serialized window. Perform(Apply[S, T]{F: f}) resumes with
// f's result once the combiner has executed it.
type Apply[S, T any] struct {
	kont.Phantom[T]
	F func(state S) T
}

// ticket tracks asynchronous completion of one dispatched operation.
// done is set after the result write; readers load done before result.
type ticket struct {
	result kont.Resumed
	done   atomix.Uint32
}

// combineDispatcher is the structural interface for combiner operations.
// DispatchCombine submits the operation to the executor and returns a
// ticket that completes once the combiner has executed it. It never
// waits itself; completion is delivered by whichever goroutine runs the
// resulting continuation chain.
type combineDispatcher[S any] interface {
	DispatchCombine(ex *Executor[S]) *ticket
}

// DispatchCombine submits F as an action. The ticket completes inside the
// exclusive window, so a submitter that drains its own action observes
// completion before Submit returns.
func (op Apply[S, T]) DispatchCombine(ex *Executor[S]) *ticket {
	tk := &ticket{}
	ex.Submit(ActionFunc[S](func(state S) *Task {
		tk.result = op.F(state)
		tk.done.Store(1)
		return nil
	}))
	return tk
}
