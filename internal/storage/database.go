package storage

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

// DatabaseStore keeps sessions in memory but flushes every transcript entry
// to PostgreSQL, so conversation history survives a restart. In-progress
// intake state intentionally does not: a restarted process greets every
// sender from START again.
type DatabaseStore struct {
	*MemoryStore
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store and reloads the persisted
// transcripts into the in-memory map.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	var entries []models.TranscriptEntry
	if err := db.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to reload transcripts: %w", err)
	}
	return newDatabaseStore(db, entries), nil
}

func newDatabaseStore(db *gorm.DB, entries []models.TranscriptEntry) *DatabaseStore {
	s := &DatabaseStore{
		MemoryStore: NewMemoryStore(),
		db:          db,
	}
	for _, entry := range entries {
		s.transcripts[entry.Phone] = append(s.transcripts[entry.Phone], entry)
	}

	log.Printf("📜 Reloaded transcripts for %d conversations", len(s.transcripts))
	return s
}

// AppendTranscript appends in memory and flushes the entry to the database.
// A failed flush is reported but the in-memory append stands, so the monitor
// keeps working even when the database is down.
func (s *DatabaseStore) AppendTranscript(phone, direction, text string) error {
	entry := models.TranscriptEntry{
		Phone:     phone,
		Direction: direction,
		Text:      text,
		Timestamp: time.Now(),
	}

	s.transcriptMu.Lock()
	s.transcripts[phone] = append(s.transcripts[phone], entry)
	s.transcriptMu.Unlock()

	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to persist transcript entry: %w", err)
	}
	return nil
}
