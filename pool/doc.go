// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object pools backing the validator's scratch tables.
// Three interchangeable implementations of api.ObjectPool:
// SyncPool (sync.Pool-backed), QueuePool (bounded FIFO free-list),
// and ShardedPool (per-shard SyncPools, cache-line padded for
// parallel callers). See objpool.go, queuepool.go, sharded.go.
package pool
