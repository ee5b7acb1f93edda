package session

import (
	"fmt"
	"sync"

	"github.com/studyboi/quizforge/internal/model"
)

// Manager keeps the open sessions of this process, one per user per
// quiz. Sessions live in memory only: the durable output of a session
// is the recorded attempt, never the session itself.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	recorder AttemptRecorder
}

func NewManager(recorder AttemptRecorder) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		recorder: recorder,
	}
}

// Open returns the user's existing session for the quiz, or starts a
// fresh one over the given loaded quiz.
func (m *Manager) Open(quiz *model.Quiz, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(userID, quiz.ID)
	if existing, ok := m.sessions[key]; ok {
		return existing, nil
	}

	sess, err := New(quiz, userID, m.recorder)
	if err != nil {
		return nil, err
	}
	m.sessions[key] = sess
	return sess, nil
}

// Get looks up an open session.
func (m *Manager) Get(userID string, quizID uint) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[sessionKey(userID, quizID)]
	return sess, ok
}

// Close discards an open session. Recorded attempts are unaffected.
func (m *Manager) Close(userID string, quizID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionKey(userID, quizID))
}

func sessionKey(userID string, quizID uint) string {
	return fmt.Sprintf("%s:%d", userID, quizID)
}
