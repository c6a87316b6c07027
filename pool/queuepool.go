// File: pool/queuepool.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO free-list pool. Unlike SyncPool, idle objects survive
// until evicted by the bound, which keeps reuse deterministic.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/mut-elems/api"
)

// QueuePool is a mutex-guarded api.ObjectPool holding at most maxIdle
// idle objects in FIFO order. Put drops the object once the free-list
// is full.
type QueuePool[T any] struct {
	mu      sync.Mutex
	free    *queue.Queue
	maxIdle int
	creator func() T
}

var _ api.ObjectPool[int] = (*QueuePool[int])(nil)

// NewQueuePool creates a QueuePool keeping up to maxIdle idle objects.
func NewQueuePool[T any](maxIdle int, creator func() T) *QueuePool[T] {
	if maxIdle < 1 {
		maxIdle = 1
	}
	return &QueuePool[T]{
		free:    queue.New(),
		maxIdle: maxIdle,
		creator: creator,
	}
}

func (qp *QueuePool[T]) Get() T {
	qp.mu.Lock()
	if qp.free.Length() > 0 {
		obj := qp.free.Remove().(T)
		qp.mu.Unlock()
		return obj
	}
	qp.mu.Unlock()
	return qp.creator()
}

func (qp *QueuePool[T]) Put(obj T) {
	qp.mu.Lock()
	if qp.free.Length() < qp.maxIdle {
		qp.free.Add(obj)
	}
	qp.mu.Unlock()
}

// Idle reports the current free-list length.
func (qp *QueuePool[T]) Idle() int {
	qp.mu.Lock()
	defer qp.mu.Unlock()
	return qp.free.Length()
}
