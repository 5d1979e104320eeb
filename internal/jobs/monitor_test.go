package jobs

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
	"github.com/Rodrigobe192/econtrolpe/internal/services"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

type nopMessenger struct{}

func (nopMessenger) SendWhatsAppMessage(to, message string) error { return nil }

type nopSink struct{}

func (nopSink) SubmitRecord(rec *models.IntakeRecord) error { return nil }

func (nopSink) TrackMessage(rec *models.IntakeRecord, text string) error { return nil }

// Stats reporting must be safe to run while the dispatcher is mid-flow for
// the same sessions; run with -race.
func TestReportConcurrentWithDispatch(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	store := storage.NewMemoryStore()
	svc := services.NewConversationService(
		store, nopMessenger{}, nopSink{}, services.DefaultConversationConfig())
	job := NewSessionStatsJob(store)

	flow := []string{"hola", "Juan", "Surco", "1", "1", "1", "1", "1"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			phone := fmt.Sprintf("+51987%06d", i%8)
			for _, msg := range flow {
				svc.ProcessMessage(phone, msg)
			}
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			job.report()
		}
	}

	// Every driven flow ran to completion, so nothing is left in flight.
	job.report()
	assert.Empty(t, store.ActiveSessions())
}
