package appstub

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
)

// DefaultSessionIdleTimeout expires sessions that have seen no request for
// this long.
const DefaultSessionIdleTimeout = 30 * time.Minute

type sessionState struct {
	email      string
	lastActive time.Time
}

// SessionManager issues bearer tokens and tracks their activity. Idle
// sessions are reaped by a background loop.
type SessionManager struct {
	sessions   map[uuid.UUID]*sessionState
	sessionsMu sync.RWMutex

	idleTimeout time.Duration

	cleanupCtx       context.Context
	cleanupCtxCancel context.CancelFunc
}

// NewSessionManager creates a SessionManager and starts the cleanup
// goroutine. A zero idleTimeout uses the default.
func NewSessionManager(idleTimeout time.Duration) *SessionManager {
	if idleTimeout == 0 {
		idleTimeout = DefaultSessionIdleTimeout
	}

	cleanupCtx, cleanupCtxCancel := context.WithCancel(context.Background())

	sm := &SessionManager{
		sessions:         make(map[uuid.UUID]*sessionState),
		idleTimeout:      idleTimeout,
		cleanupCtx:       cleanupCtx,
		cleanupCtxCancel: cleanupCtxCancel,
	}

	go sm.cleanupLoop()

	return sm
}

// Create issues a new session token for the given account.
func (sm *SessionManager) Create(email string) string {
	id, _ := uuid.NewV4()

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()
	sm.sessions[id] = &sessionState{
		email:      email,
		lastActive: time.Now(),
	}

	return id.String()
}

// Resolve returns the account behind a token and marks the session active.
// Unknown, malformed and expired tokens all resolve to ok=false.
func (sm *SessionManager) Resolve(token string) (string, bool) {
	id, err := uuid.FromString(token)
	if err != nil {
		return "", false
	}

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	state, exists := sm.sessions[id]
	if !exists {
		return "", false
	}
	if time.Since(state.lastActive) > sm.idleTimeout {
		delete(sm.sessions, id)
		return "", false
	}

	state.lastActive = time.Now()
	return state.email, true
}

// Delete invalidates a token. Deleting an unknown token is a no-op.
func (sm *SessionManager) Delete(token string) {
	id, err := uuid.FromString(token)
	if err != nil {
		return
	}

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()
	delete(sm.sessions, id)
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.sessionsMu.RLock()
	defer sm.sessionsMu.RUnlock()
	return len(sm.sessions)
}

// Close stops the cleanup goroutine.
func (sm *SessionManager) Close() {
	sm.cleanupCtxCancel()
}

func (sm *SessionManager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-sm.cleanupCtx.Done():
			return
		case <-ticker.C:
			sm.cleanupIdle()
		}
	}
}

func (sm *SessionManager) cleanupIdle() {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	now := time.Now()
	for id, state := range sm.sessions {
		if now.Sub(state.lastActive) > sm.idleTimeout {
			delete(sm.sessions, id)
		}
	}
}
