package board

import (
	"sync"
	"time"

	model "task-board-system.com/task-board-system/internal/models"
)

// Session ties one authenticated viewer to their store and drag state
// machine. The reconciler is a singleton per board instance: no two drags
// run concurrently within a session.
type Session struct {
	Viewer     model.Member
	Store      *Store
	Reconciler *Reconciler
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionManager hands out board sessions keyed by session token, creating
// them lazily on first use. Entries idle longer than the session TTL are
// evicted, so tokens that expire upstream without an explicit logout do not
// retain their cached task lists for the life of the process.
type SessionManager struct {
	mu            sync.Mutex
	commitTimeout time.Duration
	ttl           time.Duration
	sessions      map[string]*sessionEntry
}

func NewSessionManager(commitTimeout, ttl time.Duration) *SessionManager {
	return &SessionManager{
		commitTimeout: commitTimeout,
		ttl:           ttl,
		sessions:      make(map[string]*sessionEntry),
	}
}

func (m *SessionManager) Get(token string, viewer model.Member, gateway Gateway) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.evictStale(now)

	if e, ok := m.sessions[token]; ok {
		e.lastSeen = now
		e.session.Viewer = viewer
		return e.session
	}

	store := NewStore(gateway)
	s := &Session{
		Viewer:     viewer,
		Store:      store,
		Reconciler: NewReconciler(store, m.commitTimeout),
	}
	m.sessions[token] = &sessionEntry{session: s, lastSeen: now}
	return s
}

// Drop discards the session state, typically on logout.
func (m *SessionManager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// evictStale must be called with m.mu held.
func (m *SessionManager) evictStale(now time.Time) {
	for token, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, token)
		}
	}
}
