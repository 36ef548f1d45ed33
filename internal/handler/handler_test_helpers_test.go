package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"document-scanner/internal/domain"
	"document-scanner/internal/render"
	"document-scanner/internal/service"
)

type mockExtractionClient struct {
	mu       sync.Mutex
	calls    int
	lastDoc  *domain.UploadedDocument
	response *domain.ExtractionResult
}

func (m *mockExtractionClient) Extract(ctx context.Context, doc *domain.UploadedDocument) *domain.ExtractionResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastDoc = doc
	return m.response
}

func (m *mockExtractionClient) setResponse(result *domain.ExtractionResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = result
}

func (m *mockExtractionClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type testApp struct {
	router http.Handler
	client *mockExtractionClient
	cookie *http.Cookie
}

func newTestApp(t *testing.T, response *domain.ExtractionResult) *testApp {
	t.Helper()
	logger := NewMockHandlerLogger()
	client := &mockExtractionClient{response: response}
	store := service.NewMemorySessionStore(time.Hour, true)
	sessions := service.NewSessionService(store, client, logger)

	renderer, err := render.NewPageRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	scanner := NewScannerHandler(sessions, renderer, service.NewXLSXExporter(logger), logger)
	api := NewAPIHandler(client, logger)
	router := NewRouter(scanner, api, NewSessionMiddleware(sessions, logger).Middleware, logger, []string{"http://localhost:3000"})

	return &testApp{router: router, client: client}
}

// do sends req carrying the app's session cookie and remembers a new one.
func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			a.cookie = c
		}
	}
	return rr
}

func multipartRequest(t *testing.T, method, target, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("note", "ignored")

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	_, _ = part.Write(data)
	_ = writer.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
