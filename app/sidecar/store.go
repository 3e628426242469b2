package sidecar

import "sync"

// State is the supervision state of the sidecar.
type State int

const (
	StateAbsent State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "Absent"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Store holds at most one running sidecar handle for the lifetime of the
// application. Handles only leave the store through Take, so whoever takes
// the handle is the only one allowed to terminate it.
type Store struct {
	mu     sync.Mutex
	handle Handle
}

// Install sets the initial supervision state. A nil handle records that no
// sidecar is running.
func (s *Store) Install(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle = h
}

// Take removes the handle and returns it. Every call after the first
// successful one returns nil.
func (s *Store) Take() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.handle
	s.handle = nil
	return h
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == nil {
		return StateAbsent
	}
	return StateRunning
}
