package engine

import "sync"

// keyedMutex serializes work per (group,user) key. Different keys never
// block each other; mutexes are created on first use and kept for the
// process lifetime.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires the key's mutex and returns its unlock func.
func (k *keyedMutex) Lock(key string) func() {
	m := k.get(key)
	m.Lock()
	return m.Unlock
}

func accountKey(groupID, userID string) string {
	return groupID + "\x00" + userID
}
