// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "code.hybscloud.com/atomix"

// Task is a node in an intrusive singly linked chain of continuations.
// A chain is owned collectively by the goroutine running it; once a run
// starts no other goroutine runs nodes of the same chain, while appends
// to the tail remain allowed and are picked up by the running goroutine.
type Task struct {
	next atomix.Pointer[Task]
	run  func()
}

// NewTask creates a continuation that invokes run when its turn comes.
func NewTask(run func()) *Task {
	return &Task{run: run}
}

// Append links succ as the successor of t and returns the new chain tail.
// Only the current chain owner may call Append, and only on the tail.
func (t *Task) Append(succ *Task) *Task {
	t.next.Store(succ)
	return succ
}

// SwapNext atomically attaches succ as the successor of t and returns the
// previously attached successor. In correct usage the slot is empty; a
// non-nil return indicates a chaining protocol violation.
func (t *Task) SwapNext(succ *Task) *Task {
	return t.next.Swap(succ)
}

// RunChain executes t and, iteratively, every successor reachable via the
// link, including successors attached after the run started. Iteration,
// not recursion: stack depth stays constant however long the chain grows.
func (t *Task) RunChain() {
	for n := t; n != nil; n = n.next.Load() {
		n.run()
	}
}
