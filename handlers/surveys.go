// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pulsecheck/analytics"
	"github.com/danielhkuo/pulsecheck/cliparse"
	"github.com/danielhkuo/pulsecheck/middleware"
	"github.com/danielhkuo/pulsecheck/models"
	"github.com/danielhkuo/pulsecheck/repository"
)

// SurveyStore persists survey responses. Implementations return
// repository.ErrNotFound for unknown ids.
type SurveyStore interface {
	Create(ctx context.Context, s models.SurveyResponse) (models.SurveyResponse, error)
	GetByID(ctx context.Context, id string) (models.SurveyResponse, error)
	GetAll(ctx context.Context) ([]models.SurveyResponse, error)
	Update(ctx context.Context, id string, patch models.UpdateSurveyRequest) (models.SurveyResponse, error)
	Delete(ctx context.Context, id string) error
}

type SurveyHandler struct {
	store SurveyStore
	foods []models.TrackedFood
}

func NewSurveyHandler(store SurveyStore, cfg cliparse.Config) *SurveyHandler {
	foods := cfg.TrackedFoods
	if len(foods) == 0 {
		foods = analytics.DefaultTrackedFoods
	}
	return &SurveyHandler{store: store, foods: foods}
}

// ListSurveys handles GET /api/survey
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(surveys) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No survey responses found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, surveys)
}

// GetSurvey handles GET /api/survey/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	survey, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey response not found")
		return
	}
	if err != nil {
		slog.Error("failed to get survey", "survey_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, survey)
}

// CreateSurvey handles POST /api/survey
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Normalize()
	if err := validateRequest(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	survey, err := h.store.Create(r.Context(), req.SurveyResponse())
	if err != nil {
		slog.Error("failed to create survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey created", "survey_id", survey.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSurveyResponse{
		Message:        models.MessageSurveyCreated,
		SurveyResponse: survey,
	})
}

// UpdateSurvey handles PUT /api/survey/{id}
func (h *SurveyHandler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Normalize()
	if err := validateRequest(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	survey, err := h.store.Update(r.Context(), id, req)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey response not found")
		return
	}
	if err != nil {
		slog.Error("failed to update survey", "survey_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey updated", "survey_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateSurveyResponse{
		Message:       models.MessageSurveyUpdated,
		UpdatedSurvey: survey,
	})
}

// DeleteSurvey handles DELETE /api/survey/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey response not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete survey", "survey_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey deleted", "survey_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: models.MessageSurveyDeleted,
	})
}

// GetAnalytics handles GET /api/survey/analytics
func (h *SurveyHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to load surveys for analytics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnalyticsResponse{
		Message: models.MessageAnalyticsLoaded,
		Data:    analytics.Aggregate(surveys, h.foods),
	})
}
