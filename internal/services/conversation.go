package services

import (
	"log"
	"strings"
	"sync"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

// ConversationConfig toggles the behaviors that differed between deployments
// of the original bot.
type ConversationConfig struct {
	// ProcessEmptyInput runs the state machine even for empty/whitespace-only
	// inbound text (which trivially fails every menu lookup). When false, an
	// empty message is ignored entirely.
	ProcessEmptyInput bool
	// LiveTracking posts a partial intake row to the sheet for every inbound
	// message, so an advisor can watch conversations fill in as they happen.
	LiveTracking bool
}

// DefaultConversationConfig matches the production deployment.
func DefaultConversationConfig() ConversationConfig {
	return ConversationConfig{
		ProcessEmptyInput: true,
		LiveTracking:      true,
	}
}

// ConversationService walks each sender through the fixed intake question
// sequence. Processing is serialized per sender: duplicate webhook deliveries
// for the same number cannot interleave, while distinct senders proceed in
// parallel.
type ConversationService struct {
	store     storage.Store
	messenger Messenger
	sink      RecordSink
	cfg       ConversationConfig

	mu          sync.Mutex
	senderLocks map[string]*sync.Mutex
}

// NewConversationService creates a new conversation service
func NewConversationService(store storage.Store, messenger Messenger, sink RecordSink, cfg ConversationConfig) *ConversationService {
	return &ConversationService{
		store:       store,
		messenger:   messenger,
		sink:        sink,
		cfg:         cfg,
		senderLocks: make(map[string]*sync.Mutex),
	}
}

// outcome is the result of running one input through the transition table.
type outcome struct {
	kind  outcomeKind
	reply string
	next  models.State
}

type outcomeKind int

const (
	outcomeAdvance outcomeKind = iota
	outcomeReject
	outcomeComplete
)

// step describes one state's validation and transition. Free-text states
// leave vocab nil; menu states reject any input outside their table.
// prompt is the question for the NEXT state, sent on success; reject re-asks
// the current state's own question.
type step struct {
	vocab  VocabTable
	assign func(s *models.ConversationSession, value string)
	next   models.State
	prompt string
	reject string
}

var steps = map[models.State]step{
	models.StateStart: {
		next:   models.StateName,
		prompt: promptWelcome,
	},
	models.StateName: {
		assign: func(s *models.ConversationSession, v string) { s.Name = v },
		next:   models.StateDistrict,
		prompt: promptDistrict,
		reject: promptName,
	},
	models.StateDistrict: {
		assign: func(s *models.ConversationSession, v string) { s.District = v },
		next:   models.StatePropertyType,
		prompt: menuPropertyType,
		reject: promptDistrict,
	},
	models.StatePropertyType: {
		vocab:  PropertyTypes,
		assign: func(s *models.ConversationSession, v string) { s.PropertyType = v },
		next:   models.StateArea,
		prompt: menuArea,
		reject: rejectPropertyType,
	},
	models.StateArea: {
		vocab:  Areas,
		assign: func(s *models.ConversationSession, v string) { s.Area = v },
		next:   models.StateService,
		prompt: menuService,
		reject: rejectArea,
	},
	models.StateService: {
		vocab:  Services,
		assign: func(s *models.ConversationSession, v string) { s.Service = v },
		next:   models.StateServiceType,
		prompt: menuServiceType,
		reject: rejectService,
	},
	models.StateServiceType: {
		vocab:  ServiceTypes,
		assign: func(s *models.ConversationSession, v string) { s.ServiceType = v },
		next:   models.StateContact,
		prompt: menuContact,
		reject: rejectServiceType,
	},
	models.StateContact: {
		vocab:  ContactOptions,
		assign: func(s *models.ConversationSession, v string) { s.Contact = v },
		reject: rejectContact,
	},
}

// transition maps (current state, normalized input) to an outcome, mutating
// the session's collected fields. State normally advances in the caller; the
// one state write here is the recovery reset to START for a session left in
// an unrecognized state. No backward moves, no skips: a mismatch always
// re-asks the same question.
func transition(session *models.ConversationSession, text string) outcome {
	st, ok := steps[session.State]
	if !ok {
		// Unknown state, start the flow over.
		session.State = models.StateStart
		st = steps[models.StateStart]
	}

	if st.vocab == nil {
		// Free-text question. START accepts anything, the rest need some text.
		if session.State != models.StateStart && text == "" {
			return outcome{kind: outcomeReject, reply: st.reject}
		}
		if st.assign != nil {
			st.assign(session, text)
		}
		return outcome{kind: outcomeAdvance, reply: st.prompt, next: st.next}
	}

	label, ok := st.vocab.Lookup(text)
	if !ok {
		return outcome{kind: outcomeReject, reply: st.reject}
	}
	st.assign(session, label)

	if session.State == models.StateContact {
		return outcome{kind: outcomeComplete}
	}
	return outcome{kind: outcomeAdvance, reply: st.prompt, next: st.next}
}

// ProcessMessage handles one inbound WhatsApp message end to end: transcript
// logging, live tracking, the state transition and the single outbound reply.
// External-call failures are contained here and never propagate.
func (c *ConversationService) ProcessMessage(from, rawText string) {
	phone := strings.TrimPrefix(from, "whatsapp:")
	text := strings.ToLower(strings.TrimSpace(rawText))

	lock := c.senderLock(phone)
	lock.Lock()
	defer lock.Unlock()

	if text == "" && !c.cfg.ProcessEmptyInput {
		return
	}

	// Session fields are only ever touched inside UpdateSession, under the
	// store's session lock, so snapshot readers (stats job, health endpoint)
	// always see a consistent session. The per-sender lock above orders
	// whole messages from the same number.
	var out outcome
	var trackedRecord, completedRecord *models.IntakeRecord
	c.store.UpdateSession(phone, func(session *models.ConversationSession) {
		if text != "" && c.cfg.LiveTracking {
			// Snapshot before the transition: the tracking row reflects the
			// session as the message found it.
			trackedRecord = models.RecordFromSession(session)
		}

		out = transition(session, text)
		if out.kind == outcomeAdvance {
			session.State = out.next
		}
		if out.kind == outcomeComplete {
			completedRecord = models.RecordFromSession(session)
		}
	})

	if text != "" {
		c.appendTranscript(phone, models.DirectionClient, text)

		if trackedRecord != nil {
			if err := c.sink.TrackMessage(trackedRecord, text); err != nil {
				log.Printf("❌ Live tracking failed for %s: %v", phone, err)
			}
		}
	}

	switch out.kind {
	case outcomeAdvance, outcomeReject:
		c.send(phone, out.reply)

	case outcomeComplete:
		if err := c.sink.SubmitRecord(completedRecord); err != nil {
			// Keep the session so resending the contact answer retries.
			log.Printf("🚨 Failed to submit intake record for %s: %v", phone, err)
			c.send(phone, msgSinkError)
			return
		}
		c.send(phone, msgThanks)
		c.store.DeleteSession(phone)
	}
}

// send delivers one outbound message and logs it to the transcript. Send
// failures are logged and swallowed: the conversation must not stall because
// one delivery dropped.
func (c *ConversationService) send(phone, text string) {
	c.appendTranscript(phone, models.DirectionBot, text)

	if err := c.messenger.SendWhatsAppMessage(phone, text); err != nil {
		log.Printf("🚨 Failed to send message to %s: %v", phone, err)
	}
}

func (c *ConversationService) appendTranscript(phone, direction, text string) {
	if err := c.store.AppendTranscript(phone, direction, text); err != nil {
		log.Printf("⚠️  Transcript append failed for %s: %v", phone, err)
	}
}

func (c *ConversationService) senderLock(phone string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.senderLocks[phone]
	if !ok {
		lock = &sync.Mutex{}
		c.senderLocks[phone] = lock
	}
	return lock
}
