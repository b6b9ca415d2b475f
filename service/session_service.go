package service

import "sync"

// SessionFactory builds a fresh ChatbotService with its dependencies
// wired. The upload path calls it once per accepted file.
type SessionFactory func() *ChatbotService

// SessionManager holds the process-wide current session. Replacement is
// serialized against concurrent reads; at most one session is active at a
// time and a new one fully supersedes the old reference. Index entries the
// old session wrote to the external store are not cleaned up.
type SessionManager struct {
	mu         sync.RWMutex
	current    *ChatbotService
	newSession SessionFactory
}

func NewSessionManager(factory SessionFactory) *SessionManager {
	return &SessionManager{
		newSession: factory,
	}
}

// StartSession creates a new session and installs it as the current one,
// replacing any prior session.
func (m *SessionManager) StartSession() *ChatbotService {
	session := m.newSession()

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	return session
}

// Current returns the active session, or nil before the first upload.
func (m *SessionManager) Current() *ChatbotService {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
