package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	mu       sync.Mutex
	session  *model.Session
	lastSeen time.Time
}

// Store keeps visitor sessions in memory. Actions on one session are serialized,
// different sessions proceed independently.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*entry),
		now:      time.Now,
	}
}

func (s *Store) Create() uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{session: model.NewSession(id), lastSeen: s.now()}
	return id
}

func (s *Store) Exists(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// Do runs fn with exclusive access to the session.
func (s *Store) Do(id uuid.UUID, fn func(session *model.Session) error) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return errors.Wrap(ErrSessionNotFound, id.String())
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Evict drops sessions not used for longer than idleFor and returns how many were removed.
func (s *Store) Evict(idleFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-idleFor)
	evicted := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(deadline) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
