package common

import (
	"context"
	"sync"
)

// KeyedMutex hands out one lock per key. Entries are dropped once
// nobody holds or waits for them, so the map only grows with contention
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sem  chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: map[string]*keyedLock{}}
}

// Lock blocks until the key is free or the context is done, and returns
// the function releasing it. On cancellation the key is not held
func (km *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	km.mu.Lock()
	lock, ok := km.locks[key]
	if !ok {
		lock = &keyedLock{sem: make(chan struct{}, 1)}
		km.locks[key] = lock
	}
	lock.refs++
	km.mu.Unlock()

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		km.release(key, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.sem
			km.release(key, lock)
		})
	}, nil
}

func (km *KeyedMutex) release(key string, lock *keyedLock) {
	km.mu.Lock()
	defer km.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(km.locks, key)
	}
}

// Number of keys currently held or awaited
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}
