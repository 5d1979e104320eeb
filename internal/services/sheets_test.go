package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

func sheetsServiceFor(t *testing.T, handler http.HandlerFunc) *SheetsService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("APPS_SCRIPT_URL", server.URL)

	svc, err := NewSheetsService()
	require.NoError(t, err)
	return svc
}

func TestSubmitRecordPostsAllFields(t *testing.T) {
	var received map[string]string
	svc := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	})

	rec := &models.IntakeRecord{
		From:         "+51987654321",
		Name:         "juan pérez",
		District:     "miraflores",
		PropertyType: "casa",
		Area:         "0-50 m²",
		Service:      "desinsectación integral",
		ServiceType:  "preventivo",
		Contact:      "sí, por favor",
	}
	require.NoError(t, svc.SubmitRecord(rec))

	assert.Equal(t, "+51987654321", received["from"])
	assert.Equal(t, "juan pérez", received["name"])
	assert.Equal(t, "casa", received["propertyType"])
	assert.Equal(t, "sí, por favor", received["contact"])
	assert.NotEmpty(t, received["recordId"], "each submission gets a reference id")
}

func TestSubmitRecordReportsServerError(t *testing.T) {
	svc := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := svc.SubmitRecord(&models.IntakeRecord{From: "+51987654321"})
	assert.Error(t, err)
}

func TestTrackMessageIncludesTextAndPlaceholders(t *testing.T) {
	var received map[string]string
	svc := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	})

	session := models.NewConversationSession("+51987654321")
	session.Name = "juan"
	require.NoError(t, svc.TrackMessage(models.RecordFromSession(session), "hola"))

	assert.Equal(t, "hola", received["text"])
	assert.Equal(t, "juan", received["name"])
	assert.Equal(t, models.FieldUnset, received["district"])
	assert.NotEmpty(t, received["timestamp"])
}

func TestNewSheetsServiceRequiresURL(t *testing.T) {
	t.Setenv("APPS_SCRIPT_URL", "")

	_, err := NewSheetsService()
	assert.Error(t, err)
}
