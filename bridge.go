// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"code.hybscloud.com/kont"
)

// Reify converts a closure-built protocol into its explicit frame form.
// Frames are what the stepping boundary works on: a reified protocol
// can be driven one window entry at a time with Step and Advance, or
// evaluated whole with ExecExpr and RunExpr.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts a frame-built protocol back to closure form, the
// shape Exec, Run, and ExecError accept. Reflect(Reify(m)) requests the
// same window entries in the same order as m.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
