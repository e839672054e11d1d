package conversion

import (
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/google/uuid"
)

const (
	DefaultFrom = "BTC"
	DefaultTo   = "USD"
)

// SessionStore - сессии калькулятора по id из cookie
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	initial  State
	idleTTL  time.Duration
	clock    clock.Clock
}

// NewSessionStore - idleTTL <= 0 отключает вытеснение
func NewSessionStore(initial State, idleTTL time.Duration, clk clock.Clock) *SessionStore {
	if initial.From == "" {
		initial.From = DefaultFrom
	}
	if initial.To == "" {
		initial.To = DefaultTo
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		initial:  initial,
		idleTTL:  idleTTL,
		clock:    clk,
	}
}

// Get - существующая сессия; обновляет время последнего обращения
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.touch(s.clock.Now())
	}
	return sess, ok
}

// GetOrCreate - сессия по id; created == true если выдан новый id
func (s *SessionStore) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	now := s.clock.Now()
	sess = newSession(uuid.NewString(), s.initial, now)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess, true
}

// Prune - удаляет сессии без обращений дольше idleTTL, возвращает число удалённых
func (s *SessionStore) Prune() int {
	if s.idleTTL <= 0 {
		return 0
	}
	deadline := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(deadline) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
