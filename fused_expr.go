// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-allocated to eliminate heap escapes when boxing
// the empty frame into kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func applyBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	k := data.(func(T) kont.Expr[B])
	result := k(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprApplyBind runs f inside the serialized window and passes its result to k.
// Fuses ExprPerform(Apply[S, T]{F: f}) + ExprBind.
func ExprApplyBind[S, T, B any](f func(S) T, k func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = k
	bf.Unwind = applyBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Apply[S, T]{F: f}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprApplyThen runs f inside the serialized window, discards its result,
// and continues with next. Fuses ExprPerform(Apply) + ExprThen.
func ExprApplyThen[S, B any](f func(S), next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Apply[S, struct{}]{F: func(state S) struct{} {
		f(state)
		return struct{}{}
	}}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}
