// Package sessions holds the server-side mapping from opaque session tokens
// to user ids. Tokens carry no user data; the mapping lives only here.
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"
)

const sweepInterval = 10 * time.Minute

type session struct {
	userID    string
	expiresAt time.Time
}

// Store is an in-memory session store with expiry. It is safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	logger   *slog.Logger

	sweeper *time.Ticker
	done    chan struct{}
}

// New creates a session store whose sessions expire after ttl. A background
// sweep evicts expired entries; call Close to stop it.
func New(ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		sessions: make(map[string]session),
		ttl:      ttl,
		logger:   logger,
		sweeper:  time.NewTicker(sweepInterval),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create issues a fresh unguessable token bound to userID.
func (s *Store) Create(userID string) string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// UserID resolves a token to its user id. It returns false for unknown and
// expired tokens alike.
func (s *Store) UserID(token string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(sess.expiresAt) {
		return "", false
	}
	return sess.userID, true
}

// Destroy removes a session. Destroying an absent session is a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live entries, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweep.
func (s *Store) Close() {
	s.sweeper.Stop()
	close(s.done)
}

func (s *Store) sweep() {
	for {
		select {
		case <-s.done:
			return
		case <-s.sweeper.C:
			now := time.Now()
			s.mu.Lock()
			removed := 0
			for token, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, token)
					removed++
				}
			}
			s.mu.Unlock()
			if removed > 0 {
				s.logger.Debug("expired sessions removed", "count", removed)
			}
		}
	}
}
