package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"p9e.in/brandsurvey/config"
	"p9e.in/brandsurvey/middleware"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	settings *config.Settings
	db       *gorm.DB
}

func NewHealthHandler(settings *config.Settings, db *gorm.DB) *HealthHandler {
	return &HealthHandler{settings: settings, db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "up"
	if sqlDB, err := h.db.DB(); err != nil {
		database = "down"
	} else if err := sqlDB.PingContext(r.Context()); err != nil {
		database = "down"
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":                   "ok",
		"environment":              h.settings.Env,
		"database":                 database,
		"notifications_configured": h.settings.NotificationConfigured(),
	})
}
