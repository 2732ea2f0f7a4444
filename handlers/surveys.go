package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"p9e.in/brandsurvey/middleware"
	"p9e.in/brandsurvey/models"
)

// SurveyHandler serves the public submission endpoint and the admin
// listing, retrieval, deletion and export endpoints.
type SurveyHandler struct {
	store    *models.SurveyStore
	notifier *Notifier
	now      func() time.Time
}

func NewSurveyHandler(db *gorm.DB, notifier *Notifier) *SurveyHandler {
	return &SurveyHandler{
		store:    models.NewSurveyStore(db),
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateSurvey handles POST /api/surveys
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var input models.SurveyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := input.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No content")
		return
	}

	survey, err := input.ToSurvey(h.now())
	if err != nil {
		slog.Error("failed to encode survey responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.store.Create(&survey); err != nil {
		logStoreError("insert survey", err, "brand_name", input.BrandName)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("survey submitted", "survey_id", survey.ID, "brand_name", survey.BrandName)
	middleware.JSONResponse(w, http.StatusCreated, map[string]uint{"id": survey.ID})

	// Fire-and-forget: the response above is already written, the client
	// never waits on the notification outcome.
	go h.notifier.Send(survey.ID, survey.BrandName)
}
