package models

// Placeholder used for fields the sender has not answered yet, both in live
// tracking rows and in the spreadsheet columns.
const FieldUnset = "No especificado"

// IntakeRecord is the completed (or in-progress, for live tracking) intake
// form as submitted to the spreadsheet sink. JSON field names match the
// Apps Script endpoint's expected columns.
type IntakeRecord struct {
	RecordID     string `json:"recordId,omitempty"`
	From         string `json:"from"`
	Name         string `json:"name"`
	District     string `json:"district"`
	PropertyType string `json:"propertyType"`
	Area         string `json:"area"`
	Service      string `json:"service"`
	ServiceType  string `json:"serviceType"`
	Contact      string `json:"contact"`
}

// RecordFromSession snapshots a session into a record, filling unanswered
// fields with the placeholder so partial live-tracking rows stay aligned.
func RecordFromSession(s *ConversationSession) *IntakeRecord {
	return &IntakeRecord{
		From:         s.Phone,
		Name:         orUnset(s.Name),
		District:     orUnset(s.District),
		PropertyType: orUnset(s.PropertyType),
		Area:         orUnset(s.Area),
		Service:      orUnset(s.Service),
		ServiceType:  orUnset(s.ServiceType),
		Contact:      orUnset(s.Contact),
	}
}

func orUnset(v string) string {
	if v == "" {
		return FieldUnset
	}
	return v
}
