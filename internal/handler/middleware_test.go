package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"document-scanner/internal/domain"
	"document-scanner/internal/service"
)

func newTestSessionMiddleware() (*SessionMiddleware, domain.SessionService) {
	logger := NewMockHandlerLogger()
	store := service.NewMemorySessionStore(time.Hour, true)
	sessions := service.NewSessionService(store, &mockExtractionClient{response: domain.NewSuccessEmpty()}, logger)
	return NewSessionMiddleware(sessions, logger), sessions
}

func TestSessionMiddleware_StartsSession(t *testing.T) {
	middleware, _ := newTestSessionMiddleware()

	var seen *domain.Session
	handler := middleware.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSessionFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == nil {
		t.Fatalf("expected session in context")
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName || cookie.Value != seen.ID {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected HttpOnly SameSite=Lax cookie, got %+v", cookie)
	}
}

func TestSessionMiddleware_ReusesSession(t *testing.T) {
	middleware, sessions := newTestSessionMiddleware()
	existing := sessions.Resolve("")

	var seen *domain.Session
	handler := middleware.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSessionFromContext(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: existing.ID})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == nil || seen.ID != existing.ID {
		t.Fatalf("expected session %s, got %+v", existing.ID, seen)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("expected no new cookie for a known session")
	}
}

func TestSessionMiddleware_UnknownSessionReplaced(t *testing.T) {
	middleware, _ := newTestSessionMiddleware()

	var seen *domain.Session
	handler := middleware.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSessionFromContext(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired-id"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == nil || seen.ID == "expired-id" {
		t.Fatalf("expected a fresh session, got %+v", seen)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != seen.ID {
		t.Fatalf("expected cookie for the fresh session, got %+v", cookies)
	}
}

type recordingLogger struct {
	MockHandlerLogger
	messages []string
	fields   [][]interface{}
}

func (l *recordingLogger) Info(msg string, fields ...interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func TestRequestLogger_RecordsStatus(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if len(logger.messages) != 1 || logger.messages[0] != "HTTP request" {
		t.Fatalf("expected one request log line, got %v", logger.messages)
	}

	fields := logger.fields[0]
	got := map[string]interface{}{}
	for i := 0; i+1 < len(fields); i += 2 {
		got[fields[i].(string)] = fields[i+1]
	}
	if got["method"] != http.MethodPost || got["path"] != "/upload" || got["status"] != http.StatusTeapot {
		t.Fatalf("unexpected log fields: %v", got)
	}
}
