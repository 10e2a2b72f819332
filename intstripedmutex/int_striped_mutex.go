package intstripedmutex

import (
	"sync"
)

// Key is any integer key type.
type Key interface {
	~int | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64
}

// IntStripedMutex allows fine grained locking based on integer keys.
//
// Equal keys always map to the same lock; different keys may share one. The
// number of locks held in memory is fixed at construction.
//
// It is an integer version of https://github.com/nmvalera/striped-mutex
type IntStripedMutex[K Key] struct {
	stripes []sync.Mutex
}

// New creates an IntStripedMutex with the given number of stripes.
func New[K Key](stripes uint) *IntStripedMutex[K] {
	if stripes == 0 {
		stripes = 1
	}
	return &IntStripedMutex[K]{stripes: make([]sync.Mutex, stripes)}
}

// GetLock returns the lock guarding key.
func (m *IntStripedMutex[K]) GetLock(key K) *sync.Mutex {
	return &m.stripes[uint64(key)%uint64(len(m.stripes))]
}

func (m *IntStripedMutex[K]) Lock(key K) {
	m.GetLock(key).Lock()
}

func (m *IntStripedMutex[K]) Unlock(key K) {
	m.GetLock(key).Unlock()
}
