package errors

import (
	"fmt"
	"net/http"
	"testing"

	"document-scanner/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        &domain.ValidationError{Field: "image", Message: "unsupported file type"},
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no upload",
			err:        domain.ErrNoUpload,
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped missing export",
			err:        fmt.Errorf("export: %w", domain.ErrNoExportableResult),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("disk on fire"),
			wantType:   ErrorTypeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomain(tt.err)
			if appErr.Type != tt.wantType {
				t.Fatalf("expected type %s, got %s", tt.wantType, appErr.Type)
			}
			if GetStatusCode(appErr) != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, GetStatusCode(appErr))
			}
			if !IsType(appErr, tt.wantType) {
				t.Fatalf("expected IsType to match %s", tt.wantType)
			}
		})
	}
}

func TestFromDomain_Nil(t *testing.T) {
	if FromDomain(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("bad upload", "image")
	if err.Error() != "validation: bad upload (image)" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if GetStatusCode(fmt.Errorf("plain")) != http.StatusInternalServerError {
		t.Fatalf("expected 500 for plain errors")
	}
}
