// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/kont"
)

// ApplyBind runs f inside the serialized window and passes its result to k.
// Fuses Perform(Apply[S, T]{F: f}) + Bind.
func ApplyBind[S, T, B any](f func(S) T, k func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Apply[S, T]{F: f}), k)
}

// ApplyThen runs f inside the serialized window, discards its result, and
// continues with next. Fuses Perform(Apply) + Then.
func ApplyThen[S, B any](f func(S), next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Apply[S, struct{}]{F: func(state S) struct{} {
		f(state)
		return struct{}{}
	}}), next)
}

// Done completes a protocol with result a. The terminal leg of
// ApplyBind/ApplyThen chains: no further window entries are requested.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}
