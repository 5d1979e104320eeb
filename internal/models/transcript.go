package models

import "time"

// Transcript entry directions. "cliente" matches what the monitor UI expects.
const (
	DirectionClient = "cliente"
	DirectionBot    = "bot"
)

// TranscriptEntry is one message in a sender's conversation history.
// Entries are append-only and never mutated. The gorm tags are only used by
// the database-backed store; the memory store ignores them.
type TranscriptEntry struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Phone     string    `json:"-" gorm:"index;size:32"`
	Direction string    `json:"from"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the per-sender transcript as served to the monitor UI.
type Conversation struct {
	Responses []TranscriptEntry `json:"responses"`
}
