package storage

import (
	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Session operations. Sessions are always in-memory: only the transcript
	// survives a restart in the database-backed variant.
	//
	// All session mutation goes through UpdateSession, which creates the
	// session at START if absent and runs fn under the store's session lock.
	// ActiveSessions returns value snapshots taken under the same lock, so
	// concurrent readers never touch a session the dispatcher is writing.
	// GetSession hands out the live session and is only safe when no other
	// goroutine is mutating that sender.
	UpdateSession(phone string, fn func(*models.ConversationSession))
	GetSession(phone string) (*models.ConversationSession, bool)
	DeleteSession(phone string)
	ActiveSessions() []models.ConversationSession

	// Transcript operations
	AppendTranscript(phone, direction, text string) error
	GetTranscript(phone string) []models.TranscriptEntry
	AllTranscripts() map[string][]models.TranscriptEntry
}
