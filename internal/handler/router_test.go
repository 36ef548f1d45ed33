package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"document-scanner/internal/domain"
)

func TestNewRouter_Health(t *testing.T) {
	app := newTestApp(t, domain.NewSuccessEmpty())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	app.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("expected health check not to start a session")
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t, domain.NewSuccessEmpty())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/extract", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	app.router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	app := newTestApp(t, domain.NewSuccessEmpty())

	rr := app.do(httptest.NewRequest(http.MethodGet, "/extract", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
	if app.client.callCount() != 0 {
		t.Fatalf("expected no extraction call")
	}
}
