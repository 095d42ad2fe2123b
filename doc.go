// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package comb provides a lock-free serializing executor (flat combining)
// for one shared mutable state instance.
//
// Concurrent callers submit actions; actions execute one at a time in FIFO
// order without a blocking lock. The caller that wins an atomic ownership
// flag drains the pending queue on behalf of everyone else, releasing and
// re-acquiring the flag after every single action so that exclusivity windows
// stay bounded and ownership rotates under contention.
//
// # Architecture
//
//   - Transport: An unbounded intrusive multi-producer single-consumer link chain on [code.hybscloud.com/atomix] pointers holds pending actions; submission never waits.
//   - Exclusion: A single atomic flag via [code.hybscloud.com/atomix] elects the draining goroutine; no mutex exists anywhere.
//   - Continuations: Actions may return a [Task]; tasks form an intrusive chain run iteratively after the exclusive window closes.
//   - Reentrancy: A continuation that submits again on the same goroutine splices its chain onto the outer run instead of nesting, bounding stack depth.
//   - Execution: Dual-world protocol API supporting closure-based (Cont-world) and defunctionalized (Expr-world) evaluation on [code.hybscloud.com/kont].
//
// # API Topologies
//
//   - Core: [New], [Executor.Submit], [Action], [ActionFunc], [Task].
//   - Operations: [Apply] runs a function of the shared state inside the serialized window.
//   - Cont-world: [ApplyBind], [ApplyThen], [Done], evaluated by [Exec] and [ExecError].
//   - Expr-world: Zero-allocation variants [ExprApplyBind], [ExprApplyThen], evaluated by [ExecExpr] and [ExecErrorExpr]. Bridge via [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) evaluate protocols one effect at a time; [Advance] returns [code.hybscloud.com/iox.ErrWouldBlock] while the combiner has not executed the operation yet.
//   - Blocking: [Exec], [Run] (and Error/Expr variants) wait past the completion boundary using adaptive backoff.
//
// # Example
//
//	counter := new(int)
//	ex := comb.New(counter)
//	ex.Submit(comb.ActionFunc[*int](func(n *int) *comb.Task {
//		*n++
//		return nil
//	}))
package comb
