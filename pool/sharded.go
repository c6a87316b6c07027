// File: pool/sharded.go
// Author: momentics <momentics@gmail.com>
//
// Sharded pool for parallel callers. Shards are padded so the
// round-robin cursor and neighboring shards never share a cache line.

package pool

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/mut-elems/api"
)

type shard[T any] struct {
	pool *SyncPool[T]
	_    cpu.CacheLinePad
}

// ShardedPool spreads Get/Put across per-shard SyncPools (one shard
// per logical CPU, rounded up to a power of two).
type ShardedPool[T any] struct {
	next   uint64
	_      cpu.CacheLinePad
	shards []shard[T]
	mask   uint64
}

var _ api.ObjectPool[int] = (*ShardedPool[int])(nil)

// NewShardedPool creates a ShardedPool producing objects via creator.
func NewShardedPool[T any](creator func() T) *ShardedPool[T] {
	n := nextPow2(runtime.GOMAXPROCS(0))
	sp := &ShardedPool[T]{
		shards: make([]shard[T], n),
		mask:   uint64(n - 1),
	}
	for i := range sp.shards {
		sp.shards[i].pool = NewSyncPool(creator)
	}
	return sp
}

func (sp *ShardedPool[T]) Get() T {
	idx := atomic.AddUint64(&sp.next, 1) & sp.mask
	return sp.shards[idx].pool.Get()
}

func (sp *ShardedPool[T]) Put(obj T) {
	idx := atomic.AddUint64(&sp.next, 1) & sp.mask
	sp.shards[idx].pool.Put(obj)
}

// Shards returns the shard count.
func (sp *ShardedPool[T]) Shards() int {
	return len(sp.shards)
}

func nextPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
