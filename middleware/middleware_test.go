// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pulsecheck/models"
)

// captureLogs routes the default slog logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

// completedEntry returns the "request completed" record from captured logs
func completedEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", line, err)
		}
		if entry["msg"] == "request completed" {
			return entry
		}
	}

	t.Fatalf("No 'request completed' entry in logs: %s", buf.String())
	return nil
}

func TestWithLogging_RecordsSurveySubmission(t *testing.T) {
	logs := captureLogs(t)

	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: models.MessageSurveyCreated})
	})

	req := httptest.NewRequest("POST", "/api/survey", strings.NewReader(`{"fullName":"Thandi"}`))
	req.Header.Set("X-Forwarded-For", "196.25.1.7, 10.0.0.2")
	req.RemoteAddr = "10.0.0.2:41000"
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	entry := completedEntry(t, logs)

	expected := map[string]any{
		"method": "POST",
		"path":   "/api/survey",
		"remote": "196.25.1.7",
		"status": float64(http.StatusCreated),
	}
	for k, v := range expected {
		if entry[k] != v {
			t.Errorf("Expected log %s=%v, got %v", k, v, entry[k])
		}
	}

	// {"message":"Survey response created successfully"} plus newline is 51 bytes
	if entry["size"] != "51 B" {
		t.Errorf("Expected humanized size '51 B', got %v", entry["size"])
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("Expected duration_ms in log entry")
	}
}

func TestWithLogging_StatusPerOutcome(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "list surveys",
			handler: func(w http.ResponseWriter, r *http.Request) {
				JSONResponse(w, http.StatusOK, []models.SurveyResponse{})
			},
			status: http.StatusOK,
		},
		{
			name: "validation failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusBadRequest, "email is required")
			},
			status: http.StatusBadRequest,
		},
		{
			name: "unknown survey",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusNotFound, "Survey response not found")
			},
			status: http.StatusNotFound,
		},
		{
			name: "analytics storage failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch analytics")
			},
			status: http.StatusInternalServerError,
		},
		{
			name:    "handler writes nothing",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			status:  http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := captureLogs(t)

			req := httptest.NewRequest("GET", "/api/survey/abc", nil)
			w := httptest.NewRecorder()

			WithLogging(tc.handler)(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected response status %d, got %d", tc.status, w.Code)
			}

			entry := completedEntry(t, logs)
			if entry["status"] != float64(tc.status) {
				t.Errorf("Expected logged status %d, got %v", tc.status, entry["status"])
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("implicit 200 on write", func(t *testing.T) {
		w := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: w}

		rec.Write([]byte("hello"))
		rec.Write([]byte(" world"))

		if rec.status != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.status)
		}
		if rec.size != 11 {
			t.Errorf("Expected size 11, got %d", rec.size)
		}
	})

	t.Run("first status wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: w}

		rec.WriteHeader(http.StatusNotFound)
		rec.Write([]byte("missing"))

		if rec.status != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.status)
		}
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected recorder status 404, got %d", w.Code)
		}
	})
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "delete confirmation",
			statusCode: http.StatusOK,
			data:       models.MessageResponse{Message: models.MessageSurveyDeleted},
			expected:   `{"message":"Survey Response deleted successfully"}`,
		},
		{
			name:       "empty analytics",
			statusCode: http.StatusOK,
			data:       models.AnalyticsResponse{Message: models.MessageAnalyticsLoaded},
			expected:   `{"message":"Survey analytics fetched successfully","data":null}`,
		},
		{
			name:       "favorite foods",
			statusCode: http.StatusOK,
			data:       []string{"Pizza", "Pap and Wors"},
			expected:   `["Pizza","Pap and Wors"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode    int
		message       string
		expectedError string
	}{
		{http.StatusBadRequest, "ratingEatOut must be at most 5", "Bad Request"},
		{http.StatusNotFound, "No survey responses found", "Not Found"},
		{http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedError, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody_SubmitRequest(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, req models.SubmitSurveyRequest)
	}{
		{
			name: "full submission",
			body: `{"fullName":"Thandi","email":"t@example.com","age":30,"dateOfBirth":"1995-03-14",
				"favoriteFoods":["Pizza","Pap and Wors"],"ratingWatchMovies":1,"ratingListenToRadio":2,
				"ratingEatOut":3,"ratingWatchTv":4}`,
			check: func(t *testing.T, req models.SubmitSurveyRequest) {
				if req.Age == nil || *req.Age != 30 {
					t.Errorf("Expected age 30, got %v", req.Age)
				}
				if len(req.FavoriteFoods) != 2 || req.FavoriteFoods[1] != "Pap and Wors" {
					t.Errorf("Expected foods in order, got %v", req.FavoriteFoods)
				}
				if req.RatingWatchTv == nil || *req.RatingWatchTv != 4 {
					t.Errorf("Expected ratingWatchTv 4, got %v", req.RatingWatchTv)
				}
			},
		},
		{
			name: "absent ratings stay nil",
			body: `{"fullName":"Sipho","ratingEatOut":0}`,
			check: func(t *testing.T, req models.SubmitSurveyRequest) {
				if req.RatingWatchMovies != nil {
					t.Errorf("Expected nil ratingWatchMovies, got %d", *req.RatingWatchMovies)
				}
				if req.RatingEatOut == nil || *req.RatingEatOut != 0 {
					t.Errorf("Expected explicit zero ratingEatOut, got %v", req.RatingEatOut)
				}
			},
		},
		{
			name: "unknown fields ignored",
			body: `{"fullName":"Lerato","favouriteColour":"blue"}`,
			check: func(t *testing.T, req models.SubmitSurveyRequest) {
				if req.FullName != "Lerato" {
					t.Errorf("Expected fullName 'Lerato', got '%s'", req.FullName)
				}
			},
		},
		{name: "age as string", body: `{"age":"thirty"}`, wantErr: true},
		{name: "foods not a list", body: `{"favoriteFoods":"Pizza"}`, wantErr: true},
		{name: "truncated", body: `{"fullName":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/survey", strings.NewReader(tc.body))

			var parsed models.SubmitSurveyRequest
			err := ParseJSONBody(req, &parsed)

			if tc.wantErr {
				if err == nil {
					t.Error("Expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			tc.check(t, parsed)
		})
	}
}

func TestParseJSONBody_UpdateRequest(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/survey/abc", strings.NewReader(`{"email":"new@example.com","favoriteFoods":null}`))

	var parsed models.UpdateSurveyRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if parsed.Email == nil || *parsed.Email != "new@example.com" {
		t.Errorf("Expected email pointer, got %v", parsed.Email)
	}
	if parsed.FullName != nil || parsed.Age != nil {
		t.Error("Expected untouched fields to stay nil")
	}
	if parsed.FavoriteFoods != nil {
		t.Errorf("Expected null foods to decode as nil, got %v", parsed.FavoriteFoods)
	}
}

func TestParseJSONBody_ConsumesBody(t *testing.T) {
	body := io.NopCloser(bytes.NewReader([]byte(`{"fullName":"Thandi"}`)))
	req := httptest.NewRequest("POST", "/api/survey", body)

	var parsed models.SubmitSurveyRequest
	_ = ParseJSONBody(req, &parsed)

	remaining, _ := io.ReadAll(req.Body)
	if len(remaining) > 0 {
		t.Errorf("Expected body to be consumed, %d bytes left", len(remaining))
	}
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS([]string{"http://localhost:5173", "http://localhost:3001"})(nextHandler)

	testCases := []struct {
		name        string
		method      string
		origin      string
		preflight   string
		status      int
		allowOrigin string
		reachesNext bool
	}{
		{"preflight from survey form", "OPTIONS", "http://localhost:5173", "POST", http.StatusNoContent, "http://localhost:5173", false},
		{"preflight from unknown site", "OPTIONS", "https://evil.example", "DELETE", http.StatusForbidden, "", false},
		{"results page fetch", "GET", "http://localhost:3001", "", http.StatusOK, "http://localhost:3001", true},
		{"unknown site still served", "GET", "https://example.com", "", http.StatusOK, "", true},
		{"no origin header", "GET", "", "", http.StatusOK, "", true},
		{"plain OPTIONS is not a preflight", "OPTIONS", "http://localhost:5173", "", http.StatusOK, "http://localhost:5173", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/survey", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.preflight != "" {
				req.Header.Set("Access-Control-Request-Method", tc.preflight)
			}
			w := httptest.NewRecorder()

			corsHandler.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.allowOrigin {
				t.Errorf("Expected Access-Control-Allow-Origin '%s', got '%s'", tc.allowOrigin, got)
			}
			if reached := w.Body.String() == "handled"; reached != tc.reachesNext {
				t.Errorf("Expected next handler called=%v, got %v", tc.reachesNext, reached)
			}
			if !strings.Contains(w.Header().Get("Vary"), "Origin") {
				t.Error("Expected Vary: Origin")
			}
		})
	}

	t.Run("allowed methods cover the survey API", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/survey/abc", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Content-Type") {
			t.Error("Expected Content-Type in allowed headers")
		}
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		h := CORS([]string{"*"})(nextHandler)
		req := httptest.NewRequest("GET", "/api/survey/analytics", nil)
		req.Header.Set("Origin", "https://dashboard.example.org")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "https://dashboard.example.org" {
			t.Error("Expected wildcard list to allow the origin")
		}
	})
}

func TestSecureHeaders(t *testing.T) {
	h := SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONResponse(w, http.StatusOK, models.AnalyticsResponse{Message: models.MessageAnalyticsLoaded})
	}))

	req := httptest.NewRequest("GET", "/api/survey/analytics", nil)
	req.Header.Set("Origin", "https://dashboard.example.org")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
		// A frontend on another site must be able to read analytics
		"Cross-Origin-Resource-Policy": "cross-origin",
	}
	for k, v := range expected {
		if got := w.Header().Get(k); got != v {
			t.Errorf("Expected %s '%s', got '%s'", k, v, got)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "respondent behind load balancer",
			headers:    map[string]string{"X-Forwarded-For": "196.25.1.7"},
			remoteAddr: "10.0.0.2:41000",
			expectedIP: "196.25.1.7",
		},
		{
			name:       "respondent behind proxy chain",
			headers:    map[string]string{"X-Forwarded-For": "196.25.1.7, 10.0.0.9, 10.0.0.2"},
			remoteAddr: "10.0.0.2:41000",
			expectedIP: "196.25.1.7",
		},
		{
			name:       "chain without spaces",
			headers:    map[string]string{"X-Forwarded-For": "41.13.200.4,10.0.0.9"},
			remoteAddr: "10.0.0.2:41000",
			expectedIP: "41.13.200.4",
		},
		{
			name:       "nginx real IP",
			headers:    map[string]string{"X-Real-IP": "41.13.200.4"},
			remoteAddr: "127.0.0.1:5000",
			expectedIP: "41.13.200.4",
		},
		{
			name:       "forwarded wins over real IP",
			headers:    map[string]string{"X-Forwarded-For": "196.25.1.7", "X-Real-IP": "41.13.200.4"},
			remoteAddr: "127.0.0.1:5000",
			expectedIP: "196.25.1.7",
		},
		{
			name:       "dev server direct",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "no port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 loopback keeps brackets",
			remoteAddr: "[::1]:5000",
			expectedIP: "[::1]",
		},
		{
			name:       "IPv6 in forwarded header",
			headers:    map[string]string{"X-Forwarded-For": "2c0f:f4c0::1"},
			remoteAddr: "127.0.0.1:5000",
			expectedIP: "2c0f:f4c0::1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/survey", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
