// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"testing"

	"code.hybscloud.com/comb"
)

func TestTaskRunChainOrder(t *testing.T) {
	var order []int
	t1 := comb.NewTask(func() { order = append(order, 1) })
	t2 := comb.NewTask(func() { order = append(order, 2) })
	t3 := comb.NewTask(func() { order = append(order, 3) })
	tail := t1.Append(t2)
	if tail != t2 {
		t.Fatal("Append did not return the new tail")
	}
	tail = tail.Append(t3)
	if tail != t3 {
		t.Fatal("Append did not return the new tail")
	}
	t1.RunChain()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("chain ran in order %v, want [1 2 3]", order)
	}
}

func TestTaskRunChainPicksUpLateAppends(t *testing.T) {
	var order []int
	var t1, t2 *comb.Task
	t1 = comb.NewTask(func() {
		order = append(order, 1)
		// Appended after the run started; the runner must not stop at the
		// chain's length at start time.
		t2 = comb.NewTask(func() { order = append(order, 2) })
		if prev := t1.SwapNext(t2); prev != nil {
			t.Fatal("successor slot was not empty")
		}
	})
	t1.RunChain()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("chain ran in order %v, want [1 2]", order)
	}
}

func TestTaskSwapNextReturnsPrevious(t *testing.T) {
	t1 := comb.NewTask(func() {})
	t2 := comb.NewTask(func() {})
	t3 := comb.NewTask(func() {})
	if prev := t1.SwapNext(t2); prev != nil {
		t.Fatalf("first swap returned %v, want nil", prev)
	}
	if prev := t1.SwapNext(t3); prev != t2 {
		t.Fatal("second swap did not return the previously attached successor")
	}
}
