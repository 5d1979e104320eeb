package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Rodrigobe192/econtrolpe/internal/storage"
)

// HealthHandler reports service liveness and basic conversation counts.
type HealthHandler struct {
	store storage.Store
	db    *gorm.DB // nil when running on the memory store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storage.Store, db *gorm.DB) *HealthHandler {
	return &HealthHandler{store: store, db: db}
}

// HandleRoot returns a service summary
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":         "Econtrol Intake Backend",
		"version":         "1.0.0",
		"status":          "healthy",
		"active_sessions": len(h.store.ActiveSessions()),
		"conversations":   len(h.store.AllTranscripts()),
	})
}

// HandleHealth is the liveness probe, including a database ping when the
// database-backed store is in use.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK
	dbHealthy := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
			dbHealthy = false
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": dbHealthy,
		},
	})
}
