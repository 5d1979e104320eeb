package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Rodrigobe192/econtrolpe/internal/models"
	"github.com/Rodrigobe192/econtrolpe/internal/services"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

// MonitorHandler serves the live conversation monitor: the WhatsApp-Web style
// page, the transcript queries behind it, and manual advisor replies.
type MonitorHandler struct {
	store     storage.Store
	messenger services.Messenger
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(store storage.Store, messenger services.Messenger) *MonitorHandler {
	return &MonitorHandler{store: store, messenger: messenger}
}

// HandleMonitorPage serves the monitor UI
func (h *MonitorHandler) HandleMonitorPage(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(monitorPage)
}

// HandleListChats returns every sender's transcript, keyed by phone number
func (h *MonitorHandler) HandleListChats(c *fiber.Ctx) error {
	transcripts := h.store.AllTranscripts()

	chats := make(map[string]models.Conversation, len(transcripts))
	for phone, entries := range transcripts {
		chats[phone] = models.Conversation{Responses: entries}
	}
	return c.JSON(chats)
}

// HandleGetChat returns one sender's transcript
func (h *MonitorHandler) HandleGetChat(c *fiber.Ctx) error {
	from := c.Params("from")

	entries := h.store.GetTranscript(from)
	if entries == nil {
		entries = []models.TranscriptEntry{}
	}
	return c.JSON(models.Conversation{Responses: entries})
}

// SendRequest is the manual-reply body posted by the monitor UI.
type SendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// HandleSend delivers a manual advisor message to a sender. The message is
// logged to the transcript as "bot" so the flow view stays coherent; the
// conversation state machine is not touched.
func (h *MonitorHandler) HandleSend(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.To == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan datos"})
	}

	if err := h.messenger.SendWhatsAppMessage(req.To, req.Message); err != nil {
		log.Printf("🚨 Manual send to %s failed: %v", req.To, err)
		return c.JSON(fiber.Map{"status": "error", "error": err.Error()})
	}

	if err := h.store.AppendTranscript(req.To, models.DirectionBot, req.Message); err != nil {
		log.Printf("⚠️  Transcript append failed for %s: %v", req.To, err)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
