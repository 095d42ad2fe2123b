// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run drives two Cont-world combine protocols against one executor on the
// calling goroutine and returns both results. Their operations interleave
// but each executes serialized against the shared state. Uses adaptive
// backoff (iox.Backoff) when neither side can make progress. Does not
// spawn goroutines or create channels.
func Run[S, A, B any](ex *Executor[S], a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(ex, Reify(a), Reify(b))
}

// RunExpr drives two Expr-world combine protocols against one executor on
// the calling goroutine and returns both results. Uses adaptive backoff
// (iox.Backoff) when neither side can make progress. Does not spawn
// goroutines or create channels.
func RunExpr[S, A, B any](ex *Executor[S], a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			if resultA, suspA, err = Advance(ex, suspA); err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			if resultB, suspB, err = Advance(ex, suspB); err == nil {
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
