package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used in tests and as the
// degraded mode when Redis is unreachable; sessions do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	expiry   map[string]time.Time
	ttl      time.Duration
}

// NewMemoryStore builds an in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		expiry:   make(map[string]time.Time),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (*Session, error) {
	sess := newSession(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	s.expiry[sess.Token] = time.Now().Add(s.ttl)
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	exp := s.expiry[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(exp) {
		s.mu.Lock()
		delete(s.sessions, token)
		delete(s.expiry, token)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.Token] = &copied
	s.expiry[sess.Token] = time.Now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	delete(s.expiry, token)
	return nil
}
