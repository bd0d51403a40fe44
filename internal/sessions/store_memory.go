package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Suitable for development and
// tests; a restart drops every session.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Session
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Session), now: time.Now}
}

func (s *MemoryStore) Create(ctx context.Context, userID string, ttl time.Duration) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	token, err := NewToken()
	if err != nil {
		return Session{}, err
	}
	now := s.now().UTC()
	sess := Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.mu.Lock()
	s.data[token] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	s.mu.RLock()
	sess, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if sess.Expired(s.now().UTC()) {
		// Lazy cleanup: an expired session behaves exactly like an absent one.
		s.mu.Lock()
		delete(s.data, token)
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.data, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DestroyExpired(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	now := s.now().UTC()
	var removed int64
	s.mu.Lock()
	for token, sess := range s.data {
		if sess.Expired(now) {
			delete(s.data, token)
			removed++
		}
	}
	s.mu.Unlock()
	return removed, nil
}
