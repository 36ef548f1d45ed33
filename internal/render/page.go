package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"document-scanner/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// UploadInfo describes the session's upload for the preview card.
type UploadInfo struct {
	Filename    string
	ContentType string
	Size        int
}

// PageData feeds the page template.
type PageData struct {
	Dark        bool
	Palette     Palette
	Upload      *UploadInfo
	Result      *ResultView
	UploadError string
	Tips        template.HTML
}

// PageRenderer renders the single scanner page.
type PageRenderer struct {
	tmpl *template.Template
	tips template.HTML
}

// NewPageRenderer parses the embedded templates and pre-renders the tips section.
func NewPageRenderer() (*PageRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	tips, err := RenderMarkdown(tipsMarkdown)
	if err != nil {
		return nil, err
	}
	return &PageRenderer{tmpl: tmpl, tips: tips}, nil
}

// BuildPage assembles page data for a session. The theme comes from the
// session only; nothing global influences it.
func (r *PageRenderer) BuildPage(session *domain.Session, uploadError string) PageData {
	data := PageData{
		Dark:        session.Theme.Dark,
		Palette:     PaletteFor(session.Theme),
		Result:      NewResultView(session.Result),
		UploadError: uploadError,
		Tips:        r.tips,
	}
	if session.Upload != nil {
		data.Upload = &UploadInfo{
			Filename:    session.Upload.Filename,
			ContentType: session.Upload.ContentType,
			Size:        session.Upload.Size(),
		}
	}
	return data
}

// RenderBytes renders the page for session.
func (r *PageRenderer) RenderBytes(session *domain.Session, uploadError string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", r.BuildPage(session, uploadError)); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

// Render writes the page for session to w. A template failure never leaves a
// half-written page.
func (r *PageRenderer) Render(w io.Writer, session *domain.Session, uploadError string) error {
	page, err := r.RenderBytes(session, uploadError)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}
