// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pulsecheck API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

NewHandler wraps the same mux with CORS and security headers and is what
the server listens with:

	server := http.Server{Handler: router.NewHandler(db, cfg)}

# Endpoints

Health:

	GET /health

Survey responses:

	GET    /api/survey           - List all (404 when none)
	POST   /api/survey           - Submit
	GET    /api/survey/{id}      - Fetch one
	PUT    /api/survey/{id}      - Partial update
	DELETE /api/survey/{id}      - Remove
	GET    /api/survey/analytics - Aggregate statistics

# Handler Initialization

The router builds the sql-backed repository and hands it to the handler:

	surveyHandler := handlers.NewSurveyHandler(repository.NewSurveyRepository(db), cfg)
*/
package router
