// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// combineErrorHandler handles both combiner and error effects.
// Combiner ops wait on the completion boundary via iox.Backoff. Error ops
// short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type combineErrorHandler[S, E, A any] struct {
	ex     *Executor[S]
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Combine+Error handler.
// Dispatch order: Combine → Error.
func (h combineErrorHandler[S, E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(combineDispatcher[S]); ok {
		return dispatchWait(h.ex, cop), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("comb: unhandled effect in combineErrorHandler")
}

// ExecError runs a Cont-world combine protocol with error handling.
// Returns Either[E, R] — Right on success, Left on Throw. Blocks on the
// completion boundary via adaptive backoff, without spawning goroutines
// or creating channels.
func ExecError[E, S, R any](ex *Executor[S], protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := combineErrorHandler[S, E, R]{ex: ex, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr-world combine protocol with error handling.
// Returns Either[E, R] — Right on success, Left on Throw. Blocks on the
// completion boundary via adaptive backoff, without spawning goroutines
// or creating channels.
func ExecErrorExpr[E, S, R any](ex *Executor[S], protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := combineErrorHandler[S, E, R]{ex: ex, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// RunError drives two Cont-world combine protocols with error handling
// against one executor on the calling goroutine and returns both results
// as Either values. Uses adaptive backoff (iox.Backoff). Does not spawn
// goroutines or create channels.
func RunError[E, S, A, B any](ex *Executor[S], a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	return RunErrorExpr[E](ex, Reify(a), Reify(b))
}

// RunErrorExpr drives two Expr-world combine protocols with error handling
// against one executor on the calling goroutine and returns both results
// as Either values. Uses adaptive backoff (iox.Backoff). Does not spawn
// goroutines or create channels.
func RunErrorExpr[E, S, A, B any](ex *Executor[S], a kont.Expr[A], b kont.Expr[B]) (kont.Either[E, A], kont.Either[E, B]) {
	resultA, suspA := StepError[E](a)
	resultB, suspB := StepError[E](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			if resultA, suspA, err = AdvanceError(ex, suspA); err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			if resultB, suspB, err = AdvanceError(ex, suspB); err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// StepError evaluates a combine protocol with error support until the
// first effect suspension. Returns (Either[E, R], nil) on completion or
// error, or (zero, suspension) if pending.
func StepError[E, R any](protocol kont.Expr[R]) (kont.Either[E, R], *Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	result, susp := kont.StepExpr(wrapped)
	if susp == nil {
		return result, nil
	}
	return result, &Suspension[kont.Either[E, R]]{inner: susp}
}

// AdvanceError dispatches the suspended operation on ex. Combiner ops
// complete asynchronously (iox.ErrWouldBlock until executed; the
// suspension is unconsumed and retryable). Error ops are eager: Throw
// discards the suspension and returns Left.
func AdvanceError[E, S, R any](ex *Executor[S], susp *Suspension[kont.Either[E, R]]) (kont.Either[E, R], *Suspension[kont.Either[E, R]], error) {
	// Combiner ops: ticket-based asynchronous dispatch
	if cop, ok := susp.inner.Op().(combineDispatcher[S]); ok {
		if susp.tk == nil {
			susp.tk = cop.DispatchCombine(ex)
		}
		if susp.tk.done.Load() == 0 {
			var zero kont.Either[E, R]
			return zero, susp, iox.ErrWouldBlock
		}
		result, next := susp.inner.Resume(susp.tk.result)
		if next == nil {
			return result, nil, nil
		}
		return result, &Suspension[kont.Either[E, R]]{inner: next}, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.inner.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.inner.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.inner.Resume(v)
		if next == nil {
			return result, nil, nil
		}
		return result, &Suspension[kont.Either[E, R]]{inner: next}, nil
	}
	panic("comb: unhandled effect in AdvanceError")
}
