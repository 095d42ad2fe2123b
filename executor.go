// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"sync"

	"code.hybscloud.com/atomix"
	"github.com/petermattis/goid"
)

// Action is a unit of work executed with exclusive access to the shared
// state. Actions are consumed exactly once and never retried.
type Action[S any] interface {
	// Execute runs under mutual exclusion with every other action of the
	// same executor. It must not block indefinitely: while it runs, no
	// other action executes. It may return a Task to run after the
	// exclusive window closes, or nil.
	Execute(state S) *Task
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc[S any] func(state S) *Task

func (f ActionFunc[S]) Execute(state S) *Task { return f(state) }

// inProgress records the tail of the continuation chain the current
// goroutine is running. It exists only between chain-run entry and exit
// and is never shared across goroutines.
type inProgress struct {
	tail *Task
}

// Executor serializes actions against one shared state instance.
//
// The ownership flag plus the pending chain implement a non-blocking mutex:
// whoever wins the flag drains queued actions one at a time, releasing the
// flag after each so another submitter may take over between actions.
type Executor[S any] struct {
	pending mpscQueue[S]
	size    atomix.Int64
	owner   atomix.Uint32
	state   S
	frames  sync.Map // goroutine id → *inProgress
	serial  Serial
}

// New creates an executor bound to state for its entire lifetime. The
// executor never inspects state; it only guarantees serialized access
// during action execution. The pending chain is unbounded: submission
// never waits for drain progress.
func New[S any](state S) *Executor[S] {
	e := &Executor[S]{
		state:  state,
		serial: nextSerial(),
	}
	e.pending.init()
	return e
}

// Serial returns the serial number assigned to this executor.
func (e *Executor[S]) Serial() Serial {
	return e.serial
}

// Submit enqueues a and returns without waiting for it to execute.
//
// If no other goroutine currently owns draining, the caller takes
// ownership and drains the queue, executing actions against the shared
// state and collecting the continuations they produce. Otherwise the
// caller returns immediately: the action was enqueued before the
// ownership check, so the current owner is guaranteed to observe it.
//
// A panic inside an action propagates on the draining goroutine, which
// may differ from the submitting one. Ownership is released regardless,
// and continuations collected from earlier actions of the same batch
// still run.
func (e *Executor[S]) Submit(a Action[S]) {
	e.enqueue(a)
	if e.owner.Load() != 0 || !e.owner.CompareAndSwap(0, 1) {
		return
	}
	var head, tail *Task
	defer func() {
		if head != nil {
			e.runBatch(head, tail)
		}
	}()
	for {
		e.drainOne(&head, &tail)
		if e.size.Load() == 0 || !e.owner.CompareAndSwap(0, 1) {
			return
		}
	}
}

// drainOne executes at most one pending action while holding ownership.
// Ownership is released unconditionally, even if the action panics, so
// one failing action never jams the queue.
func (e *Executor[S]) drainOne(head, tail **Task) {
	defer e.owner.Store(0)
	a, ok := e.pending.dequeue()
	if !ok {
		return
	}
	e.size.Add(-1)
	if t := a.Execute(e.state); t != nil {
		if *head == nil {
			*head, *tail = t, t
		} else {
			*tail = (*tail).Append(t)
		}
	}
}

// enqueue appends a to the pending chain, incrementing the occupancy
// counter only after the node is published. The counter increment happens
// before the submitter's ownership check, so a racing owner observing
// size 0 implies the action has already been consumed.
func (e *Executor[S]) enqueue(a Action[S]) {
	e.pending.enqueue(a)
	e.size.Add(1)
}

// runBatch hands a drained batch chain to the trampoline.
//
// Fresh frame: record the batch tail, run the chain head to tail by
// iteration, remove the frame. Reentrant frame (a continuation of an
// outer run on this same goroutine submitted again and produced a new
// batch): splice the new chain onto the outer chain's recorded tail and
// return, leaving execution to the single outermost run. The successor
// slot being spliced must be empty; anything else is a defect in the
// chaining protocol.
func (e *Executor[S]) runBatch(head, tail *Task) {
	id := goid.Get()
	if v, ok := e.frames.Load(id); ok {
		fr := v.(*inProgress)
		if prev := fr.tail.SwapNext(head); prev != nil {
			panic("comb: continuation successor slot already linked")
		}
		fr.tail = tail
		return
	}
	fr := &inProgress{tail: tail}
	e.frames.Store(id, fr)
	defer e.frames.Delete(id)
	// From here on fr.tail may advance under reentrant splices; the chain
	// itself is the only trustworthy record of what remains to run.
	head.RunChain()
}
