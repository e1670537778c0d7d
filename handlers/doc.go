// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pulsecheck API.

# Handler Types

SurveyHandler serves every /api/survey endpoint. It depends on a
SurveyStore rather than a database handle:

	h := handlers.NewSurveyHandler(repository.NewSurveyRepository(db), cfg)

# Survey Operations

	GET    /api/survey           → ListSurveys
	POST   /api/survey           → CreateSurvey
	GET    /api/survey/{id}      → GetSurvey
	PUT    /api/survey/{id}      → UpdateSurvey (only fields present in the body change)
	DELETE /api/survey/{id}      → DeleteSurvey
	GET    /api/survey/analytics → GetAnalytics

# Validation

Request bodies are trimmed and then checked once with
github.com/go-playground/validator/v10. The first failing field becomes
a 400 response naming the JSON field, e.g. "email is required" or
"ratingEatOut must be at most 5". Nothing invalid reaches the store.

# Errors

repository.ErrNotFound maps to 404. Any other store error is logged and
returned as 500 "Database error", or "Failed to fetch analytics" for the
analytics endpoint.
*/
package handlers
