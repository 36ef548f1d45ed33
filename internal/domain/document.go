package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// AllowedImageExtensions lists the upload extensions the scanner accepts.
var AllowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadedDocument is an image held in memory for the lifetime of a session.
type UploadedDocument struct {
	Data        []byte    `json:"-"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// NewUploadedDocument validates the filename and builds an UploadedDocument.
// Only the extension is checked; size and content are taken as-is.
func NewUploadedDocument(filename, contentType string, data []byte) (*UploadedDocument, error) {
	name := strings.TrimSpace(filepath.Base(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, &ValidationError{Field: "image", Message: "file name is required"}
	}

	ext := strings.ToLower(filepath.Ext(name))
	defaultType, ok := AllowedImageExtensions[ext]
	if !ok {
		return nil, &ValidationError{
			Field:   "image",
			Message: ErrUnsupportedFileType.Error() + ": allowed JPG, JPEG, PNG",
		}
	}

	contentType = strings.TrimSpace(contentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultType
	}

	return &UploadedDocument{
		Data:        data,
		Filename:    name,
		ContentType: contentType,
		UploadedAt:  time.Now(),
	}, nil
}

// Size returns the number of bytes held.
func (d *UploadedDocument) Size() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}
