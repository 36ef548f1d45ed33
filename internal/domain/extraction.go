package domain

import (
	"context"
	"encoding/json"
	"sort"
)

// Outcome tags the variant of an ExtractionResult.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeSuccessEmpty      Outcome = "success_empty"
	OutcomeServerError       Outcome = "server_error"
	OutcomeTimeout           Outcome = "timeout"
	OutcomeConnectionFailure Outcome = "connection_failure"
	OutcomeUnexpectedError   Outcome = "unexpected_error"
)

// Recognized keys returned by the extraction service.
const (
	FieldEDNumber = "ed_number"
	FieldDate     = "date"
	FieldToName   = "to_name"
)

// RecognizedFields is the ordered set of keys promoted to summary items.
var RecognizedFields = []string{FieldEDNumber, FieldDate, FieldToName}

// ExtractionResult is the classified outcome of one call to the extraction service.
// Only the payload fields belonging to Outcome are meaningful.
type ExtractionResult struct {
	Outcome Outcome `json:"outcome"`

	// Success
	Fields map[string]string `json:"fields,omitempty"`
	Raw    json.RawMessage   `json:"raw,omitempty"`

	// ServerError
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`

	// UnexpectedError
	Message string `json:"message,omitempty"`
}

func NewSuccess(fields map[string]string, raw json.RawMessage) *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeSuccess, Fields: fields, Raw: raw}
}

func NewSuccessEmpty() *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeSuccessEmpty}
}

func NewServerError(status int, body string) *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeServerError, StatusCode: status, Body: body}
}

func NewTimeout() *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeTimeout}
}

func NewConnectionFailure() *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeConnectionFailure}
}

func NewUnexpectedError(message string) *ExtractionResult {
	return &ExtractionResult{Outcome: OutcomeUnexpectedError, Message: message}
}

// Succeeded reports whether the service accepted the document.
func (r *ExtractionResult) Succeeded() bool {
	return r != nil && (r.Outcome == OutcomeSuccess || r.Outcome == OutcomeSuccessEmpty)
}

// OrderedFieldKeys lists recognized keys first, then the remaining keys sorted.
func OrderedFieldKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(RecognizedFields))
	for _, key := range RecognizedFields {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	rest := make([]string, 0, len(fields))
	for key := range fields {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// ExtractionClient sends a document to the extraction service.
// It never returns an error: every failure is folded into the result.
type ExtractionClient interface {
	Extract(ctx context.Context, doc *UploadedDocument) *ExtractionResult
}
