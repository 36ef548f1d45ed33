package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"document-scanner/internal/domain"
	apperrors "document-scanner/pkg/errors"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// GetSessionFromContext returns the session resolved by the session middleware
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err to its status code and writes it
func writeAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromDomain(err)
	writeError(w, appErr.StatusCode, appErr.Message)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// readUploadedDocument pulls the named file part out of a multipart request.
// Parts are read straight into memory; nothing is spooled to disk.
func readUploadedDocument(r *http.Request, field string) (*domain.UploadedDocument, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, apperrors.NewValidationError("multipart form data is required", err.Error())
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, apperrors.NewValidationError("file is required", field)
		}
		if err != nil {
			return nil, apperrors.NewValidationError("failed to read multipart form", err.Error())
		}
		if part.FormName() != field || part.FileName() == "" {
			_ = part.Close()
			continue
		}
		return documentFromPart(part)
	}
}

func documentFromPart(part *multipart.Part) (*domain.UploadedDocument, error) {
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to read uploaded file", err.Error())
	}
	doc, err := domain.NewUploadedDocument(part.FileName(), part.Header.Get("Content-Type"), data)
	if err != nil {
		return nil, apperrors.FromDomain(err)
	}
	return doc, nil
}

// describeError renders err for display inside the page
func describeError(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return apperrors.FromDomain(err).Message
}
