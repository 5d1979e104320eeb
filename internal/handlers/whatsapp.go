package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Rodrigobe192/econtrolpe/internal/services"
)

// WhatsAppHandler handles WhatsApp webhook requests
type WhatsAppHandler struct {
	conversation *services.ConversationService
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(conversation *services.ConversationService) *WhatsAppHandler {
	return &WhatsAppHandler{conversation: conversation}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"` // WhatsApp number (whatsapp:+51987654321)
	To         string `form:"To"`   // Our Twilio number
	Body       string `form:"Body"` // Message text
	NumMedia   string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages. Malformed or empty
// envelopes (status callbacks, media-only messages) are acknowledged with
// 200 and dropped, so Twilio never retries them.
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		log.Printf("⚠️  Ignoring malformed webhook payload: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	if payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	log.Printf("📩 WhatsApp message from %s: %q", payload.From, payload.Body)
	h.conversation.ProcessMessage(payload.From, payload.Body)

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the JSON body accepted by the development endpoint.
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test messages without Twilio (for development)
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	if payload.From == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing sender",
		})
	}

	log.Printf("🧪 Test webhook from %s: %s", payload.From, payload.Message)
	h.conversation.ProcessMessage(payload.From, payload.Message)

	return c.JSON(fiber.Map{"success": true})
}
