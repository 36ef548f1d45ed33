package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"syscall"
	"time"

	"document-scanner/internal/domain"
)

// imageFieldName is the multipart part the extraction service reads.
const imageFieldName = "image"

// WebhookExtractionClient posts documents to the extraction webhook.
type WebhookExtractionClient struct {
	endpoint   string
	httpClient *http.Client
	logger     domain.Logger
}

// NewWebhookExtractionClient creates a client for endpoint. A zero timeout
// leaves the call unbounded apart from the caller's context.
func NewWebhookExtractionClient(endpoint string, timeout time.Duration, logger domain.Logger) *WebhookExtractionClient {
	return &WebhookExtractionClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Extract performs exactly one POST and classifies what came back.
func (c *WebhookExtractionClient) Extract(ctx context.Context, doc *domain.UploadedDocument) *domain.ExtractionResult {
	if doc == nil {
		return domain.NewUnexpectedError(domain.ErrNoUpload.Error())
	}

	start := time.Now()
	result := c.send(ctx, doc)

	fields := []interface{}{
		"outcome", result.Outcome,
		"filename", doc.Filename,
		"bytes", doc.Size(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	}
	switch {
	case result.Succeeded():
		c.logger.Info("Extraction completed", append(fields, "fields", len(result.Fields))...)
	case result.Outcome == domain.OutcomeServerError:
		c.logger.Warn("Extraction service returned an error status", append(fields, "status", result.StatusCode)...)
	default:
		c.logger.Warn("Extraction request failed", append(fields, "message", result.Message)...)
	}
	return result
}

func (c *WebhookExtractionClient) send(ctx context.Context, doc *domain.UploadedDocument) *domain.ExtractionResult {
	body, contentType, err := buildMultipartBody(doc)
	if err != nil {
		return domain.NewUnexpectedError(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return domain.NewUnexpectedError(err.Error())
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyTransportError(err)
	}

	return ClassifyResponse(resp.StatusCode, resp.Header, data)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildMultipartBody encodes doc as the single "image" part. The part keeps
// the declared content type rather than the octet-stream default of CreateFormFile.
func buildMultipartBody(doc *domain.UploadedDocument) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		imageFieldName, quoteEscaper.Replace(doc.Filename)))
	header.Set("Content-Type", doc.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write multipart part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

// ClassifyTransportError maps a failed round trip onto an outcome.
// Timeouts win over connection failures. A failed TLS handshake counts as a
// connection failure.
func ClassifyTransportError(err error) *domain.ExtractionResult {
	if err == nil {
		return domain.NewUnexpectedError("unknown transport error")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeout()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewTimeout()
	}

	var (
		dnsErr     *net.DNSError
		opErr      *net.OpError
		verifyErr  *tls.CertificateVerificationError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
		recordErr  tls.RecordHeaderError
	)
	switch {
	case errors.As(err, &dnsErr),
		errors.As(err, &opErr),
		errors.As(err, &verifyErr),
		errors.As(err, &authErr),
		errors.As(err, &hostErr),
		errors.As(err, &invalidErr),
		errors.As(err, &recordErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewConnectionFailure()
	}

	return domain.NewUnexpectedError(err.Error())
}

// ClassifyResponse maps a completed response onto an outcome. It depends only
// on its arguments.
func ClassifyResponse(status int, header http.Header, body []byte) *domain.ExtractionResult {
	if status != http.StatusOK {
		return domain.NewServerError(status, string(body))
	}

	if !isJSONContentType(header.Get("Content-Type")) {
		return domain.NewSuccessEmpty()
	}

	fields, raw, ok := parseFields(body)
	if !ok {
		return domain.NewSuccessEmpty()
	}
	return domain.NewSuccess(fields, raw)
}

func isJSONContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "application/json")
}

// parseFields decodes a non-empty JSON object. String values are kept as-is,
// anything else keeps its JSON text.
func parseFields(body []byte) (map[string]string, json.RawMessage, bool) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil || len(object) == 0 {
		return nil, nil, false
	}

	fields := make(map[string]string, len(object))
	for key, value := range object {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields[key] = s
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			fields[key] = string(value)
			continue
		}
		fields[key] = compact.String()
	}

	var raw bytes.Buffer
	if err := json.Compact(&raw, body); err != nil {
		return fields, nil, true
	}
	return fields, json.RawMessage(raw.Bytes()), true
}
