// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/mut-elems/api"
)

// SyncPool adapts sync.Pool to the generic api.ObjectPool contract.
// Idle objects may be dropped by the runtime at any time; Get then
// falls back to the creator.
type SyncPool[T any] struct {
	p *sync.Pool
}

var _ api.ObjectPool[int] = (*SyncPool[int])(nil)

// NewSyncPool creates a SyncPool producing fresh objects via creator.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		p: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.p.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.p.Put(obj)
}
