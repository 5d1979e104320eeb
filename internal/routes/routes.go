package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Rodrigobe192/econtrolpe/internal/handlers"
	"github.com/Rodrigobe192/econtrolpe/internal/middleware"
	"github.com/Rodrigobe192/econtrolpe/internal/services"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, conversation *services.ConversationService, messenger services.Messenger, db *gorm.DB) {
	health := handlers.NewHealthHandler(store, db)
	whatsapp := handlers.NewWhatsAppHandler(conversation)
	monitor := handlers.NewMonitorHandler(store, messenger)

	// Health endpoints
	app.Get("/", health.HandleRoot)
	app.Get("/health", health.HandleHealth)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip signature validation for ngrok
		log.Println("⚠️  WhatsApp webhook validation DISABLED")
		webhooks.Post("/whatsapp", whatsapp.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsapp.HandleWebhook)
	}

	// Test endpoint (development only, JSON body instead of Twilio form)
	app.Post("/test/whatsapp", whatsapp.HandleTestWebhook)

	// ========== MONITOR ROUTES ==========
	app.Get("/monitor", monitor.HandleMonitorPage)

	api := app.Group("/api")
	api.Get("/chats", monitor.HandleListChats)
	api.Get("/chat/:from", monitor.HandleGetChat)
	api.Post("/send", monitor.HandleSend)
}
