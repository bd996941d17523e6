package main

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"void-runner/logger"
	"void-runner/sim"
)

const maxSessions = 100

// SessionIdleTimeout is how long a session with no connections survives
var SessionIdleTimeout = 30 * time.Second

var (
	errSessionNotFound = errors.New("session not found")
	errSessionFull     = errors.New("too many active sessions")
)

// Session is one simulation and the connections attached to it
type Session struct {
	ID         string
	Game       *Game
	lastActive time.Time
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	seed     int64 // 0 seeds each session from the clock
	log      *logrus.Entry
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(seed int64) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		seed:     seed,
		log:      logger.Component("sessions"),
	}
}

// CreateSession starts a new simulation
func (sm *SessionManager) CreateSession() (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil, errSessionFull
	}

	id := uuid.NewString()
	seed := sm.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := sm.log.WithField("sid", id)
	g := sim.New(sim.DefaultConfig(), rand.New(rand.NewSource(seed)), sim.WithLogger(log))
	sess := &Session{
		ID:         id,
		Game:       NewGame(id, g, log),
		lastActive: time.Now(),
	}
	sm.sessions[id] = sess
	go sess.Game.Run()
	log.WithField("seed", seed).Info("session created")
	return sess, nil
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sess, ok := sm.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return sess, nil
}

// MarkActive resets the idle clock of a session
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.lastActive = time.Now()
	}
}

// Detach removes a connection from a session. The session is removed when
// its last connection leaves.
func (sm *SessionManager) Detach(id string, b Broadcaster) {
	sess, err := sm.GetSession(id)
	if err != nil {
		return
	}
	if sess.Game.Detach(b) == 0 {
		sm.remove(id)
	}
}

// Reap removes sessions that have had no connections for SessionIdleTimeout.
// Returns how many were removed.
func (sm *SessionManager) Reap() int {
	sm.mu.RLock()
	var idle []string
	for id, sess := range sm.sessions {
		if sess.Game.ViewerCount() == 0 && time.Since(sess.lastActive) > SessionIdleTimeout {
			idle = append(idle, id)
		}
	}
	sm.mu.RUnlock()

	for _, id := range idle {
		sm.remove(id)
	}
	return len(idle)
}

// RunReaper calls Reap periodically until stop is closed
func (sm *SessionManager) RunReaper(stop <-chan struct{}) {
	ticker := time.NewTicker(SessionIdleTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sm.Reap()
		case <-stop:
			return
		}
	}
}

func (sm *SessionManager) remove(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	delete(sm.sessions, id)
	sm.mu.Unlock()
	if !ok {
		return
	}
	sess.Game.Stop()
	sm.log.WithField("sid", id).Info("session removed")
}

// Count returns the number of live sessions
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, sess.Game.Info())
	}
	return list
}
