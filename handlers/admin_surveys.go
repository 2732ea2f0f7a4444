package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/brandsurvey/middleware"
	"p9e.in/brandsurvey/models"
)

// ListSurveys handles GET /api/admin/surveys
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	params := models.ParseListParams(r)

	result, err := h.store.List(params)
	if err != nil {
		logStoreError("list surveys", err,
			"page", params.Page,
			"limit", params.Limit,
			"search", params.Search,
			"admin", middleware.GetAdminUser(r),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetSurvey handles GET /api/admin/surveys/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := surveyID(w, r)
	if !ok {
		return
	}

	survey, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
			return
		}
		logStoreError("fetch survey", err, "survey_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, survey)
}

// DeleteSurvey handles DELETE /api/admin/surveys/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := surveyID(w, r)
	if !ok {
		return
	}

	affected, err := h.store.Delete(id)
	if err != nil {
		logStoreError("delete survey", err, "survey_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}

	slog.Info("survey deleted", "survey_id", id, "admin", middleware.GetAdminUser(r))
	middleware.JSONResponse(w, http.StatusOK, map[string]uint{"deletedId": id})
}

// surveyID parses the {id} path variable. The route pattern restricts it to
// digits already; the parse guards against overflow.
func surveyID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return 0, false
	}
	return uint(id), true
}
