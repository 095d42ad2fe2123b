// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"testing"

	"code.hybscloud.com/comb"
)

// TestDeepReentrantChain nests 100k levels of continuation → submit →
// continuation. The trampoline splices every nested batch onto the
// outermost run, so stack depth stays constant and levels execute in
// nesting order.
func TestDeepReentrantChain(t *testing.T) {
	const depth = 100_000
	ex := comb.New(&struct{}{})
	order := make([]int, 0, depth)
	var submit func(level int)
	submit = func(level int) {
		ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
			return comb.NewTask(func() {
				order = append(order, level)
				if level+1 < depth {
					submit(level + 1)
				}
			})
		}))
	}
	// Single goroutine: the whole cascade completes inside this call.
	submit(0)
	if len(order) != depth {
		t.Fatalf("got %d levels, want %d", len(order), depth)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("position %d ran level %d, want %d", i, v, i)
		}
	}
}

// TestReentrantSpliceOrder checks that a chain produced by a reentrant
// submission runs after the outer chain's current tail: with a batch
// [t1, t2] where t1 submits an action yielding t3, the run order is
// t1, t2, t3 even though t3 was produced during t1.
func TestReentrantSpliceOrder(t *testing.T) {
	skipRace(t)
	ex := comb.New(&struct{}{})
	started := make(chan struct{})
	release := make(chan struct{})
	drained := make(chan struct{})
	var order []int
	go func() {
		defer close(drained)
		ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
			close(started)
			<-release
			return nil
		}))
	}()
	<-started
	// Queue both actions into one batch while the gate holds ownership.
	ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
		return comb.NewTask(func() {
			order = append(order, 1)
			ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
				return comb.NewTask(func() { order = append(order, 3) })
			}))
		})
	}))
	ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
		return comb.NewTask(func() { order = append(order, 2) })
	}))
	close(release)
	<-drained
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("chain ran in order %v, want [1 2 3]", order)
	}
}

// TestIndependentChainsOnSeparateGoroutines checks that a fresh batch on a
// goroutine with no in-progress run gets its own trampoline frame rather
// than touching another goroutine's chain.
func TestIndependentChainsOnSeparateGoroutines(t *testing.T) {
	skipRace(t)
	ex := comb.New(&struct{}{})
	first := make(chan struct{})
	second := make(chan struct{})
	ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
		return comb.NewTask(func() { close(first) })
	}))
	go func() {
		ex.Submit(comb.ActionFunc[*struct{}](func(*struct{}) *comb.Task {
			return comb.NewTask(func() { close(second) })
		}))
	}()
	<-first
	<-second
}
