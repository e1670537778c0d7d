// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pulsecheck/cliparse"
	"github.com/danielhkuo/pulsecheck/handlers"
	"github.com/danielhkuo/pulsecheck/middleware"
	"github.com/danielhkuo/pulsecheck/repository"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(repository.NewSurveyRepository(db), cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey responses
	mux.HandleFunc("GET /api/survey", middleware.WithLogging(surveyHandler.ListSurveys))
	mux.HandleFunc("POST /api/survey", middleware.WithLogging(surveyHandler.CreateSurvey))
	mux.HandleFunc("GET /api/survey/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("PUT /api/survey/{id}", middleware.WithLogging(surveyHandler.UpdateSurvey))
	mux.HandleFunc("DELETE /api/survey/{id}", middleware.WithLogging(surveyHandler.DeleteSurvey))

	// More specific than /api/survey/{id}, so it wins for this path
	mux.HandleFunc("GET /api/survey/analytics", middleware.WithLogging(surveyHandler.GetAnalytics))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pulsecheck API v1"))
	})

	return mux
}

// NewHandler wraps the router with CORS and security headers
func NewHandler(db *sql.DB, cfg cliparse.Config) http.Handler {
	var h http.Handler = NewRouter(db, cfg)
	h = middleware.CORS(cfg.AllowedOrigins)(h)
	return middleware.SecureHeaders(h)
}
