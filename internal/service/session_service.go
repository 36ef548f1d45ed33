package service

import (
	"context"
	"errors"

	"document-scanner/internal/domain"
)

type sessionService struct {
	store  domain.SessionStore
	client domain.ExtractionClient
	logger domain.Logger
}

func NewSessionService(
	store domain.SessionStore,
	client domain.ExtractionClient,
	logger domain.Logger,
) domain.SessionService {
	return &sessionService{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Resolve returns the session for id, starting a new one when it is unknown or expired
func (s *sessionService) Resolve(id string) *domain.Session {
	if id != "" {
		session, err := s.store.Get(id)
		if err == nil {
			return session
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Error("Failed to load session", err, "session_id", id)
		}
	}
	session := s.store.Create()
	s.logger.Debug("Session started", "session_id", session.ID)
	return session
}

// SetUpload replaces the session's document and discards the live result
func (s *sessionService) SetUpload(id string, doc *domain.UploadedDocument) (*domain.Session, error) {
	return s.store.Update(id, func(session *domain.Session) {
		session.Upload = doc
		session.Result = nil
	})
}

// ToggleTheme flips the theme; the next render pass starts without a result
func (s *sessionService) ToggleTheme(id string) (*domain.Session, error) {
	return s.store.Update(id, func(session *domain.Session) {
		session.Theme = session.Theme.Toggle()
		session.Result = nil
	})
}

// Extract sends the session's upload to the extraction service and makes the
// outcome the live result. Without an upload nothing is sent.
func (s *sessionService) Extract(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if session.Upload == nil {
		return session, domain.ErrNoUpload
	}

	doc := session.Upload
	result := s.client.Extract(ctx, doc)

	return s.store.Update(id, func(session *domain.Session) {
		// A newer upload arrived while the call was in flight; its own
		// trigger owns the result slot.
		if session.Upload != doc {
			return
		}
		session.Result = result
	})
}
