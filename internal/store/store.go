// Package store holds batch results between upload and download. Entries
// are keyed by a generated session ID and expire after a fixed TTL; the
// cleanup job reclaims the disk space they reference.
package store

import (
	"sync"
	"time"

	"resumesorter/internal/models"
)

type entry struct {
	result    *models.BatchResult
	expiresAt time.Time
}

// Store is an in-memory, session-keyed result store. Safe for concurrent
// use by request handlers and the cleanup job.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// New creates a store whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Put saves a batch result under its session ID, resetting the expiry.
func (s *Store) Put(result *models.BatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[result.ID] = &entry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns the live batch result for a session ID. Expired entries are
// treated as absent; the cleanup sweep removes them.
func (s *Store) Get(id string) (*models.BatchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// TakeArchive returns the archive path for a session and clears it, so a
// second download attempt finds nothing.
func (s *Store) TakeArchive(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) || e.result.ArchivePath == "" {
		return "", false
	}
	path := e.result.ArchivePath
	e.result.ArchivePath = ""
	return path, true
}

// Delete removes a session's entry.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Has reports whether a session ID has a live entry.
func (s *Store) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// DeleteExpired drops all expired entries and returns their session IDs so
// the caller can remove the upload folders they owned.
func (s *Store) DeleteExpired() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var expired []string
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			expired = append(expired, id)
			delete(s.entries, id)
		}
	}
	return expired
}

// Len returns the number of entries, including not-yet-swept expired ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
