package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/brandsurvey/config"
	"p9e.in/brandsurvey/handlers"
	"p9e.in/brandsurvey/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(settings *config.Settings, db *gorm.DB) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)

	notifier := handlers.NewNotifier(settings)
	surveyHandler := handlers.NewSurveyHandler(db, notifier)
	healthHandler := handlers.NewHealthHandler(settings, db)

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	// =====================================================
	// Public Routes (rate limited)
	// =====================================================
	limiter := middleware.NewRateLimiter(settings.RateLimitPerHour)
	public := r.PathPrefix("/api/surveys").Subrouter()
	public.Use(limiter.Middleware)
	public.HandleFunc("", surveyHandler.CreateSurvey).Methods("POST")

	// =====================================================
	// Admin Routes (require Basic Auth)
	// =====================================================
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.BasicAuth(settings))

	admin.HandleFunc("/surveys", surveyHandler.ListSurveys).Methods("GET")
	admin.HandleFunc("/surveys/export", surveyHandler.ExportSurveys).Methods("GET")
	admin.HandleFunc("/surveys/{id:[0-9]+}", surveyHandler.GetSurvey).Methods("GET")
	admin.HandleFunc("/surveys/{id:[0-9]+}", surveyHandler.DeleteSurvey).Methods("DELETE")

	// Unmatched routes get the same JSON error shape as everything else.
	r.NotFoundHandler = notFound()
	r.MethodNotAllowedHandler = notFound()

	return r
}

func notFound() http.Handler {
	return middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	}))
}
