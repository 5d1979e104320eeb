package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

// RecordSink receives intake data. SubmitRecord is the final completion
// submission; TrackMessage is the best-effort per-message live-tracking row.
// Both are fire-and-forget from the dispatcher's point of view.
type RecordSink interface {
	SubmitRecord(rec *models.IntakeRecord) error
	TrackMessage(rec *models.IntakeRecord, text string) error
}

// SheetsService posts intake rows to the Google Apps Script endpoint that
// feeds the company spreadsheet.
type SheetsService struct {
	url    string
	client *http.Client
}

// NewSheetsService reads the Apps Script URL from the environment.
func NewSheetsService() (*SheetsService, error) {
	url := os.Getenv("APPS_SCRIPT_URL")
	if url == "" {
		return nil, fmt.Errorf("missing APPS_SCRIPT_URL in environment variables")
	}
	return &SheetsService{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// trackedRow is the live-tracking payload: the partial record plus the raw
// message that produced it.
type trackedRow struct {
	models.IntakeRecord
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// SubmitRecord sends the completed intake form to the spreadsheet.
func (s *SheetsService) SubmitRecord(rec *models.IntakeRecord) error {
	rec.RecordID = uuid.NewString()

	if err := s.post(rec); err != nil {
		return fmt.Errorf("failed to submit intake record: %w", err)
	}

	log.Printf("✅ Intake record %s for %s saved to sheet", rec.RecordID, rec.From)
	return nil
}

// TrackMessage appends a live-tracking row for one inbound message.
func (s *SheetsService) TrackMessage(rec *models.IntakeRecord, text string) error {
	row := trackedRow{
		IntakeRecord: *rec,
		Text:         text,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.post(row); err != nil {
		return fmt.Errorf("failed to track message: %w", err)
	}
	return nil
}

func (s *SheetsService) post(payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("apps script returned status %d", resp.StatusCode)
	}
	return nil
}
