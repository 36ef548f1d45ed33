// Package handler provides HTTP handlers for the scanner page and API.
package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"document-scanner/internal/domain"
	"document-scanner/internal/render"
	apperrors "document-scanner/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScannerHandler serves the interactive scanner page
type ScannerHandler struct {
	sessions domain.SessionService
	renderer *render.PageRenderer
	exporter domain.Exporter
	logger   domain.Logger
}

// NewScannerHandler creates a new scanner handler
func NewScannerHandler(sessions domain.SessionService, renderer *render.PageRenderer, exporter domain.Exporter, logger domain.Logger) *ScannerHandler {
	return &ScannerHandler{
		sessions: sessions,
		renderer: renderer,
		exporter: exporter,
		logger:   logger,
	}
}

// Index renders the page for the current session
func (h *ScannerHandler) Index(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not available")
		return
	}
	h.renderPage(w, http.StatusOK, session, "")
}

// UploadDocument stores the selected image in the session
func (h *ScannerHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not available")
		return
	}

	doc, err := readUploadedDocument(r, "document")
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			h.logger.Debug("Upload rejected", "session_id", session.ID, "reason", err.Error())
		} else {
			h.logger.Error("Failed to read upload", err, "session_id", session.ID)
		}
		h.renderPage(w, apperrors.GetStatusCode(err), session, describeError(err))
		return
	}

	if _, err := h.sessions.SetUpload(session.ID, doc); err != nil {
		h.logger.Error("Failed to store upload", err, "session_id", session.ID)
		writeAppError(w, err)
		return
	}

	h.logger.Info("Document uploaded",
		"session_id", session.ID,
		"filename", doc.Filename,
		"content_type", doc.ContentType,
		"bytes", doc.Size(),
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Preview streams the uploaded image back to the browser
func (h *ScannerHandler) Preview(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok || session.Upload == nil {
		writeAppError(w, domain.ErrNoUpload)
		return
	}

	w.Header().Set("Content-Type", previewContentType(session.Upload))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Length", strconv.Itoa(session.Upload.Size()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(session.Upload.Data)
}

// previewContentType serves the type implied by the accepted extension, never
// the one the browser declared.
func previewContentType(doc *domain.UploadedDocument) string {
	if contentType, ok := domain.AllowedImageExtensions[strings.ToLower(filepath.Ext(doc.Filename))]; ok {
		return contentType
	}
	return "application/octet-stream"
}

// Extract sends the upload to the extraction service. The outcome becomes the
// session's live result and is shown on the next render.
func (h *ScannerHandler) Extract(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not available")
		return
	}

	updated, err := h.sessions.Extract(r.Context(), session.ID)
	switch {
	case errors.Is(err, domain.ErrNoUpload):
		h.logger.Debug("Extraction skipped without upload", "session_id", session.ID)
	case err != nil:
		h.logger.Error("Extraction could not run", err, "session_id", session.ID)
	case updated.Result != nil:
		h.logger.Debug("Extraction result stored", "session_id", session.ID, "outcome", updated.Result.Outcome)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleTheme flips the session's light/dark preference
func (h *ScannerHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not available")
		return
	}

	if _, err := h.sessions.ToggleTheme(session.ID); err != nil {
		h.logger.Error("Failed to toggle theme", err, "session_id", session.ID)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ExportResult downloads the live result's fields as an XLSX workbook
func (h *ScannerHandler) ExportResult(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeAppError(w, domain.ErrSessionNotFound)
		return
	}

	data, err := h.exporter.ExportXLSX(session.Result)
	if err != nil {
		if !errors.Is(err, domain.ErrNoExportableResult) {
			h.logger.Error("Failed to export result", err, "session_id", session.ID)
		}
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="extraction.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *ScannerHandler) renderPage(w http.ResponseWriter, status int, session *domain.Session, uploadError string) {
	page, err := h.renderer.RenderBytes(session, uploadError)
	if err != nil {
		h.logger.Error("Failed to render page", err, "session_id", session.ID)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(page)
}
