package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
)

func touchSession(store *MemoryStore, phone string) {
	store.UpdateSession(phone, func(*models.ConversationSession) {})
}

func TestUpdateSessionCreatesAtStart(t *testing.T) {
	store := NewMemoryStore()

	var created *models.ConversationSession
	store.UpdateSession("+51900000001", func(s *models.ConversationSession) {
		created = s
	})
	require.NotNil(t, created)
	assert.Equal(t, models.StateStart, created.State)
	assert.Equal(t, "+51900000001", created.Phone)

	// Same sender gets the same session back.
	store.UpdateSession("+51900000001", func(s *models.ConversationSession) {
		s.Name = "juan"
	})
	session, ok := store.GetSession("+51900000001")
	require.True(t, ok)
	assert.Same(t, created, session)
	assert.Equal(t, "juan", session.Name)
}

func TestDeleteSessionStartsFresh(t *testing.T) {
	store := NewMemoryStore()

	store.UpdateSession("+51900000001", func(s *models.ConversationSession) {
		s.State = models.StateContact
	})
	session, _ := store.GetSession("+51900000001")
	store.DeleteSession("+51900000001")

	_, ok := store.GetSession("+51900000001")
	assert.False(t, ok)

	touchSession(store, "+51900000001")
	fresh, ok := store.GetSession("+51900000001")
	require.True(t, ok)
	assert.Equal(t, models.StateStart, fresh.State)
	assert.NotSame(t, session, fresh)
}

func TestActiveSessionsReturnsSnapshots(t *testing.T) {
	store := NewMemoryStore()
	touchSession(store, "+51900000001")
	touchSession(store, "+51900000002")

	snapshots := store.ActiveSessions()
	require.Len(t, snapshots, 2)

	// Snapshots are copies: mutating one never reaches the stored session.
	snapshots[0].Name = "mutated"
	live, ok := store.GetSession(snapshots[0].Phone)
	require.True(t, ok)
	assert.Empty(t, live.Name)
}

func TestTranscriptAppendOrdering(t *testing.T) {
	store := NewMemoryStore()
	phone := "+51900000001"

	require.NoError(t, store.AppendTranscript(phone, models.DirectionClient, "hola"))
	require.NoError(t, store.AppendTranscript(phone, models.DirectionBot, "bienvenido"))
	require.NoError(t, store.AppendTranscript(phone, models.DirectionClient, "juan"))

	entries := store.GetTranscript(phone)
	require.Len(t, entries, 3)
	assert.Equal(t, "hola", entries[0].Text)
	assert.Equal(t, "bienvenido", entries[1].Text)
	assert.Equal(t, "juan", entries[2].Text)
	assert.False(t, entries[0].Timestamp.After(entries[2].Timestamp))
}

func TestGetTranscriptReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	phone := "+51900000001"
	require.NoError(t, store.AppendTranscript(phone, models.DirectionClient, "hola"))

	entries := store.GetTranscript(phone)
	entries[0].Text = "mutated"

	assert.Equal(t, "hola", store.GetTranscript(phone)[0].Text)
}

func TestAllTranscriptsKeyedBySender(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.AppendTranscript("+51900000001", models.DirectionClient, "hola"))
	require.NoError(t, store.AppendTranscript("+51900000002", models.DirectionClient, "buenas"))

	all := store.AllTranscripts()
	require.Len(t, all, 2)
	assert.Equal(t, "hola", all["+51900000001"][0].Text)
	assert.Equal(t, "buenas", all["+51900000002"][0].Text)
}
