package booking

import "sync"

// roomLocks serializes admissions per room so the overlap check and the
// insert run as a unit. Lock entries are never removed; the map grows with
// the number of distinct rooms ever booked, which is bounded by the catalog.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *roomLocks) get(roomID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	return m
}
