// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "code.hybscloud.com/atomix"

// queueNode is one link in the pending-action chain.
type queueNode[S any] struct {
	next   atomix.Pointer[queueNode[S]]
	action Action[S]
}

// mpscQueue is an unbounded intrusive multi-producer single-consumer
// queue: a stub-rooted link chain where producers swap the tail and
// then publish the link behind it. enqueue is lock-free and always
// succeeds, so submission never waits — in particular an action may
// submit from inside the exclusive window while its own goroutine owns
// draining. dequeue is called only under drain ownership (one logical
// consumer at a time; rotation is ordered by the ownership flag).
type mpscQueue[S any] struct {
	head atomix.Pointer[queueNode[S]]
	tail atomix.Pointer[queueNode[S]]
	stub queueNode[S]
}

func (q *mpscQueue[S]) init() {
	q.head.Store(&q.stub)
	q.tail.Store(&q.stub)
}

// enqueue appends a. The tail swap linearizes the FIFO position; the
// link store publishes the node to the consumer.
func (q *mpscQueue[S]) enqueue(a Action[S]) {
	n := &queueNode[S]{action: a}
	prev := q.tail.Swap(n)
	prev.next.Store(n)
}

// dequeue removes and returns the next action. ok is false when the
// chain is empty, or transiently when a producer has swapped the tail
// but not yet published its link; the drain loop re-checks occupancy
// and retries.
func (q *mpscQueue[S]) dequeue() (a Action[S], ok bool) {
	h := q.head.Load()
	n := h.next.Load()
	if n == nil {
		return nil, false
	}
	q.head.Store(n)
	a = n.action
	n.action = nil
	return a, true
}
