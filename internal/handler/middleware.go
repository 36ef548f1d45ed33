package handler

import (
	"context"
	"net/http"
	"time"

	"document-scanner/internal/domain"
)

// SessionCookieName identifies the browser's session.
const SessionCookieName = "scanner_session"

// SessionMiddleware attaches the caller's session to the request context
type SessionMiddleware struct {
	sessions domain.SessionService
	logger   domain.Logger
}

func NewSessionMiddleware(sessions domain.SessionService, logger domain.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			id = cookie.Value
		}

		session := m.sessions.Resolve(id)
		if session.ID != id {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    session.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
