package usecase

import (
	"sync"
	"time"
)

// SearchSession tracks which clients have a search in flight.
// A client may run one search at a time; overlapping submissions are
// rejected rather than queued.
type SearchSession struct {
	mu     sync.Mutex
	active map[string]time.Time
}

// NewSearchSession creates an empty session tracker
func NewSearchSession() *SearchSession {
	return &SearchSession{active: make(map[string]time.Time)}
}

// TryStart marks a search as started for clientKey.
// It returns false if one is already in progress.
func (s *SearchSession) TryStart(clientKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.active[clientKey]; busy {
		return false
	}
	s.active[clientKey] = time.Now()
	return true
}

// Finish marks the search of clientKey as done
func (s *SearchSession) Finish(clientKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, clientKey)
}

// InProgress reports whether clientKey has a search in flight
func (s *SearchSession) InProgress(clientKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.active[clientKey]
	return busy
}

// Active returns the number of searches in flight
func (s *SearchSession) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
