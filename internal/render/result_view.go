package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"document-scanner/internal/domain"
)

// Level selects how a result banner is styled.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// User-facing messages, one per outcome.
const (
	MessageSuccess           = "Document processed successfully! Your Google Sheet has been updated."
	MessageTimeout           = "Request timed out. Please try again."
	MessageConnectionFailure = "Cannot connect to processing server. Please check if the service is running."
	messageServerError       = "Processing failed with status: %d"
	messageServerDetails     = "Error details: %s"
	messageUnexpected        = "Unexpected error: %s"
)

var fieldLabels = map[string]string{
	domain.FieldEDNumber: "ED Number",
	domain.FieldDate:     "Date",
	domain.FieldToName:   "To Name",
}

// SummaryItem is a recognized field shown prominently.
type SummaryItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldRow is one entry of the full field mapping.
type FieldRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ResultView is what the results panel shows for one ExtractionResult.
type ResultView struct {
	Outcome    domain.Outcome `json:"outcome"`
	Level      Level          `json:"level"`
	Message    string         `json:"message"`
	Details    string         `json:"details,omitempty"`
	Summary    []SummaryItem  `json:"summary,omitempty"`
	Fields     []FieldRow     `json:"fields,omitempty"`
	RawJSON    string         `json:"-"`
	Exportable bool           `json:"-"`
}

// NewResultView maps a result to its single rendering. A nil result has no view.
func NewResultView(result *domain.ExtractionResult) *ResultView {
	if result == nil {
		return nil
	}

	switch result.Outcome {
	case domain.OutcomeSuccess:
		view := &ResultView{
			Outcome:    result.Outcome,
			Level:      LevelSuccess,
			Message:    MessageSuccess,
			Exportable: len(result.Fields) > 0,
		}
		for _, key := range domain.RecognizedFields {
			if value, ok := result.Fields[key]; ok {
				view.Summary = append(view.Summary, SummaryItem{Key: key, Label: fieldLabels[key], Value: value})
			}
		}
		for _, key := range domain.OrderedFieldKeys(result.Fields) {
			view.Fields = append(view.Fields, FieldRow{Key: key, Value: result.Fields[key]})
		}
		view.RawJSON = prettyJSON(result)
		return view

	case domain.OutcomeSuccessEmpty:
		return &ResultView{Outcome: result.Outcome, Level: LevelSuccess, Message: MessageSuccess}

	case domain.OutcomeServerError:
		view := &ResultView{
			Outcome: result.Outcome,
			Level:   LevelError,
			Message: fmt.Sprintf(messageServerError, result.StatusCode),
		}
		if result.Body != "" {
			view.Details = fmt.Sprintf(messageServerDetails, result.Body)
		}
		return view

	case domain.OutcomeTimeout:
		return &ResultView{Outcome: result.Outcome, Level: LevelError, Message: MessageTimeout}

	case domain.OutcomeConnectionFailure:
		return &ResultView{Outcome: result.Outcome, Level: LevelError, Message: MessageConnectionFailure}

	case domain.OutcomeUnexpectedError:
		return &ResultView{
			Outcome: result.Outcome,
			Level:   LevelError,
			Message: fmt.Sprintf(messageUnexpected, result.Message),
		}
	}

	return &ResultView{
		Outcome: domain.OutcomeUnexpectedError,
		Level:   LevelError,
		Message: fmt.Sprintf(messageUnexpected, "unknown outcome "+string(result.Outcome)),
	}
}

func prettyJSON(result *domain.ExtractionResult) string {
	raw := []byte(result.Raw)
	if len(raw) == 0 {
		encoded, err := json.Marshal(result.Fields)
		if err != nil {
			return ""
		}
		raw = encoded
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
