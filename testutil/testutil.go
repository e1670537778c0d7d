// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pulsecheck/analytics"
	"github.com/danielhkuo/pulsecheck/cliparse"
	"github.com/danielhkuo/pulsecheck/db"
	"github.com/danielhkuo/pulsecheck/models"
)

// SetupTestDB opens a fresh SQLite database in a temp directory with the
// full schema. The pool is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "test.db")

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   cliparse.DatabaseSQLite,
		AllowedOrigins: []string{"http://localhost:5173"},
		TrackedFoods:   analytics.DefaultTrackedFoods,
	}
}

// ValidSurvey returns a record that passes every schema constraint
func ValidSurvey() models.SurveyResponse {
	return models.SurveyResponse{
		FullName:            "Test User",
		Email:               "test@example.com",
		ContactNumber:       "0123456789",
		Age:                 30,
		DateOfBirth:         "1995-01-01",
		FavoriteFoods:       []string{"Pizza"},
		RatingWatchMovies:   3,
		RatingListenToRadio: 3,
		RatingEatOut:        3,
		RatingWatchTv:       3,
	}
}

// CreateTestSurvey inserts s directly and returns it with id and timestamps set
func CreateTestSurvey(t *testing.T, conn *sql.DB, s models.SurveyResponse) models.SurveyResponse {
	t.Helper()

	foods, err := json.Marshal(s.FavoriteFoods)
	if err != nil {
		t.Fatalf("Failed to encode foods: %v", err)
	}
	return InsertRawSurvey(t, conn, s, string(foods))
}

// InsertRawSurvey stores foods verbatim in favorite_foods
func InsertRawSurvey(t *testing.T, conn *sql.DB, s models.SurveyResponse, foods string) models.SurveyResponse {
	t.Helper()

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := conn.Exec(`
		INSERT INTO survey_response (id, full_name, email, contact_number, age, date_of_birth, favorite_foods,
			rating_watch_movies, rating_listen_to_radio, rating_eat_out, rating_watch_tv, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, s.ID, s.FullName, s.Email, s.ContactNumber, s.Age, s.DateOfBirth, foods,
		s.RatingWatchMovies, s.RatingListenToRadio, s.RatingEatOut, s.RatingWatchTv, now, now)
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return s
}

// CountSurveys returns the number of stored surveys
func CountSurveys(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM survey_response`).Scan(&n); err != nil {
		t.Fatalf("Failed to count surveys: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
