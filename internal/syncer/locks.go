package syncer

import "sync"

// ownerLocks hands out one mutex per owner so reconciliation passes for the
// same owner serialize without different owners blocking each other.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func (l *ownerLocks) lock(ownerID uint64) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uint64]*sync.Mutex)
	}
	m, ok := l.locks[ownerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[ownerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
