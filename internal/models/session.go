package models

import "time"

// State identifies the question a conversation is currently waiting on.
type State string

const (
	StateStart        State = "start"
	StateName         State = "name"
	StateDistrict     State = "district"
	StatePropertyType State = "property_type"
	StateArea         State = "area"
	StateService      State = "service"
	StateServiceType  State = "service_type"
	StateContact      State = "contact"
)

// ConversationSession tracks one sender's progress through the intake flow.
// Sessions live in memory only; a sender with no session is implicitly at START.
type ConversationSession struct {
	Phone        string    `json:"phone"`
	State        State     `json:"state"`
	Name         string    `json:"name,omitempty"`
	District     string    `json:"district,omitempty"`
	PropertyType string    `json:"property_type,omitempty"`
	Area         string    `json:"area,omitempty"`
	Service      string    `json:"service,omitempty"`
	ServiceType  string    `json:"service_type,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}

// NewConversationSession creates a fresh session at START for the given sender.
func NewConversationSession(phone string) *ConversationSession {
	now := time.Now()
	return &ConversationSession{
		Phone:      phone,
		State:      StateStart,
		CreatedAt:  now,
		LastActive: now,
	}
}
