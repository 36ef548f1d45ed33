package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

const tipsMarkdown = `### Photo Quality

- Ensure good lighting
- Keep document flat and straight
- Avoid shadows and glare
- Use high resolution when possible

### Document Requirements

- ED Number should be clearly visible
- Date field must be legible
- 'To Name' field should be complete
- Avoid blurry or distorted images
`

// RenderMarkdown converts trusted, compiled-in Markdown to HTML.
func RenderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
