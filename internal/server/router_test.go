package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	observability.Logger = zap.NewNop()
	if err := calculator.InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterCalculatorHealthEndpoint(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/calculator/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if body := w.Body.String(); body != "Calculator service is running!" {
		t.Fatalf("expected body %q, got %q", "Calculator service is running!", body)
	}
}

func TestNewRouterCalculateSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router := NewRouter()
	body := []byte(`{"number1": 10.0, "number2": 5.0, "operation": "+"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculator/calculate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	if got, ok := payload["result"].(float64); !ok || got != 15 {
		t.Fatalf("expected result 15, got %#v", payload["result"])
	}
	if payload["success"] != true || payload["message"] != "Calculation successful" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestNewRouterUnknownRouteAndMethod(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "unknown route", method: http.MethodGet, path: "/api/calculator/history", status: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/calculator/calculate", status: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected Content-Type application/json, got %q", ct)
			}
		})
	}
}

func TestNewRouterExposesPrometheusMetrics(t *testing.T) {
	router := NewRouter()

	// Generate at least one observation for the request histogram.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_request_duration_seconds") {
		t.Fatal("expected http_request_duration_seconds in metrics output")
	}
}
