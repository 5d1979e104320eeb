package storage

import (
	"sync"
	"time"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

// MemoryStore holds all sessions and transcripts in memory.
type MemoryStore struct {
	sessions    map[string]*models.ConversationSession
	transcripts map[string][]models.TranscriptEntry

	sessionMu    sync.RWMutex
	transcriptMu sync.RWMutex
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]*models.ConversationSession),
		transcripts: make(map[string][]models.TranscriptEntry),
	}
}

// Session operations

func (m *MemoryStore) UpdateSession(phone string, fn func(*models.ConversationSession)) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	session, exists := m.sessions[phone]
	if !exists {
		session = models.NewConversationSession(phone)
		m.sessions[phone] = session
	}
	session.LastActive = time.Now()
	fn(session)
}

func (m *MemoryStore) GetSession(phone string) (*models.ConversationSession, bool) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	session, exists := m.sessions[phone]
	return session, exists
}

func (m *MemoryStore) DeleteSession(phone string) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	delete(m.sessions, phone)
}

// ActiveSessions returns value snapshots copied under the session lock, so
// callers can read them while the dispatcher keeps mutating the originals.
func (m *MemoryStore) ActiveSessions() []models.ConversationSession {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	sessions := make([]models.ConversationSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, *session)
	}
	return sessions
}

// Transcript operations

func (m *MemoryStore) AppendTranscript(phone, direction, text string) error {
	m.transcriptMu.Lock()
	defer m.transcriptMu.Unlock()

	m.transcripts[phone] = append(m.transcripts[phone], models.TranscriptEntry{
		Phone:     phone,
		Direction: direction,
		Text:      text,
		Timestamp: time.Now(),
	})
	return nil
}

func (m *MemoryStore) GetTranscript(phone string) []models.TranscriptEntry {
	m.transcriptMu.RLock()
	defer m.transcriptMu.RUnlock()

	entries := m.transcripts[phone]
	out := make([]models.TranscriptEntry, len(entries))
	copy(out, entries)
	return out
}

func (m *MemoryStore) AllTranscripts() map[string][]models.TranscriptEntry {
	m.transcriptMu.RLock()
	defer m.transcriptMu.RUnlock()

	out := make(map[string][]models.TranscriptEntry, len(m.transcripts))
	for phone, entries := range m.transcripts {
		copied := make([]models.TranscriptEntry, len(entries))
		copy(copied, entries)
		out[phone] = copied
	}
	return out
}
