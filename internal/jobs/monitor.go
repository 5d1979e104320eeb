package jobs

import (
	"log"
	"time"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

// Sessions idle longer than this are reported as abandoned. They are never
// evicted: a sender can pick the flow back up days later, and the intake form
// must not lose half-collected answers.
const abandonedAfter = 2 * time.Hour

// SessionStatsJob periodically logs how many conversations are in flight and
// which senders have stalled mid-flow, so abandoned-session growth is at
// least visible.
type SessionStatsJob struct {
	store    storage.Store
	interval time.Duration
	stop     chan struct{}
}

// NewSessionStatsJob creates a new session stats job
func NewSessionStatsJob(store storage.Store) *SessionStatsJob {
	return &SessionStatsJob{
		store:    store,
		interval: 15 * time.Minute,
		stop:     make(chan struct{}),
	}
}

// Start begins the periodic stats logging
func (j *SessionStatsJob) Start() {
	log.Println("Starting session stats job...")
	go j.run()
}

// Stop halts the job
func (j *SessionStatsJob) Stop() {
	close(j.stop)
}

func (j *SessionStatsJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.report()
		}
	}
}

func (j *SessionStatsJob) report() {
	sessions := j.store.ActiveSessions()

	byState := make(map[models.State]int)
	abandoned := 0
	for _, s := range sessions {
		byState[s.State]++
		if time.Since(s.LastActive) > abandonedAfter {
			abandoned++
		}
	}

	log.Printf("📊 Sessions: %d active, %d idle >%s, by state: %v",
		len(sessions), abandoned, abandonedAfter, byState)
}
