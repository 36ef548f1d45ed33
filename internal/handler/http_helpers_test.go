package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"document-scanner/internal/domain"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteError_EscapesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, `bad "quote"`)

	if strings.TrimSpace(rr.Body.String()) != `{"error":"bad \"quote\""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, domain.ErrNoUpload)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), domain.ErrNoUpload.Error()) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestReadUploadedDocument_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")

	if _, err := readUploadedDocument(req, "document"); err == nil {
		t.Fatalf("expected error for non-multipart request")
	}
}

func TestReadUploadedDocument_MissingField(t *testing.T) {
	req := multipartRequest(t, http.MethodPost, "/upload", "other", "scan.png", "image/png", []byte("img"))

	_, err := readUploadedDocument(req, "document")
	if err == nil || !strings.Contains(err.Error(), "file is required") {
		t.Fatalf("expected file is required error, got %v", err)
	}
}

func TestReadUploadedDocument_Valid(t *testing.T) {
	req := multipartRequest(t, http.MethodPost, "/upload", "document", "scan.jpeg", "", []byte("jpegbytes"))

	doc, err := readUploadedDocument(req, "document")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Filename != "scan.jpeg" || doc.ContentType != "image/jpeg" || string(doc.Data) != "jpegbytes" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}
