package state

import (
	"sync"
	"time"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/users"
)

// Snapshot is a copy of the directory state plus bookkeeping for the UI.
type Snapshot struct {
	directory.State
	LastUpdated time.Time
	Revision    uint64 // increments on every applied action
}

// Store is the single dispatch surface for directory state.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	closed   bool
}

// NewStore returns a Store in the initial loading state.
func NewStore() *Store {
	return &Store{snapshot: Snapshot{State: directory.Initial()}}
}

// Dispatch applies action through directory.Reduce. It returns false without
// changing anything once the store is closed, so results arriving after
// teardown are dropped.
func (s *Store) Dispatch(action directory.Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || action == nil {
		return false
	}
	s.snapshot.State = directory.Reduce(s.snapshot.State, action)
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Revision++
	return true
}

// Close marks the store dead. Further dispatches are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Users = cloneUsers(s.snapshot.Users)
	snap.Filtered = cloneUsers(s.snapshot.Filtered)
	return snap
}

func cloneUsers(list []users.User) []users.User {
	if len(list) == 0 {
		return nil
	}
	dup := make([]users.User, len(list))
	copy(dup, list)
	return dup
}
