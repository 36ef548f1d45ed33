package handler

import (
	"net/http"

	"document-scanner/internal/domain"
	"document-scanner/internal/render"
)

// APIHandler exposes extraction as a stateless JSON endpoint
type APIHandler struct {
	client domain.ExtractionClient
	logger domain.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(client domain.ExtractionClient, logger domain.Logger) *APIHandler {
	return &APIHandler{
		client: client,
		logger: logger,
	}
}

// ExtractResponse is the JSON form of one classified outcome
type ExtractResponse struct {
	Outcome    domain.Outcome       `json:"outcome"`
	Message    string               `json:"message"`
	Details    string               `json:"details,omitempty"`
	StatusCode int                  `json:"status_code,omitempty"`
	Fields     map[string]string    `json:"fields,omitempty"`
	Summary    []render.SummaryItem `json:"summary,omitempty"`
}

// Extract forwards the "image" part to the extraction service. Every outcome,
// failures included, is reported with 200; only a bad upload is a 400.
func (h *APIHandler) Extract(w http.ResponseWriter, r *http.Request) {
	doc, err := readUploadedDocument(r, "image")
	if err != nil {
		writeAppError(w, err)
		return
	}

	result := h.client.Extract(r.Context(), doc)
	view := render.NewResultView(result)

	writeJSON(w, http.StatusOK, ExtractResponse{
		Outcome:    view.Outcome,
		Message:    view.Message,
		Details:    view.Details,
		StatusCode: result.StatusCode,
		Fields:     result.Fields,
		Summary:    view.Summary,
	})
}
