package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Rodrigobe192/econtrolpe/database"
	"github.com/Rodrigobe192/econtrolpe/internal/jobs"
	"github.com/Rodrigobe192/econtrolpe/internal/models"
	"github.com/Rodrigobe192/econtrolpe/internal/routes"
	"github.com/Rodrigobe192/econtrolpe/internal/services"
	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	// Initialize storage
	var store storage.Store
	var db *gorm.DB

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (transcripts lost on restart)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal(err)
		}
		db = database.DB

		log.Println("🔄 Running database migrations...")
		if err := db.AutoMigrate(&models.TranscriptEntry{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		dbStore, err := storage.NewDatabaseStore(db)
		if err != nil {
			log.Fatal("Failed to initialize database store:", err)
		}
		store = dbStore
		log.Println("✅ Using PostgreSQL transcript storage")
	}
	storage.SetStore(store)

	// Initialize Twilio service
	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Fatal("Failed to initialize Twilio service:", err)
	}
	log.Println("✅ Twilio service initialized")

	// Initialize spreadsheet sink
	sheetsService, err := services.NewSheetsService()
	if err != nil {
		log.Fatal("Failed to initialize sheets service:", err)
	}
	log.Println("✅ Sheets service initialized")

	// The conversation dispatcher ties everything together
	conversation := services.NewConversationService(
		store, twilioService, sheetsService, services.DefaultConversationConfig())

	// Periodic session stats
	statsJob := jobs.NewSessionStatsJob(store)
	statsJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Econtrol Intake Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, store, conversation, twilioService, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		statsJob.Stop()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Econtrol Intake Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", storageType())
	log.Println("📱 Webhook: /webhook/whatsapp")
	log.Println("🖥️  Monitor: /monitor")
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory"
	}
	return "PostgreSQL"
}
