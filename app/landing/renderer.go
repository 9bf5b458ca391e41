package landing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/vibast-solutions/ms-go-landing/app/entity"
)

const templateName = "index.html"

//go:embed templates/index.html
var templateFS embed.FS

// Renderer holds the landing document rendered once at construction.
// It is immutable and safe for concurrent use.
type Renderer struct {
	page     entity.Page
	document []byte
}

func NewRenderer(page entity.Page) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		return nil, fmt.Errorf("parse landing template: %w", err)
	}

	page = page.Clone()
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateName, page); err != nil {
		return nil, fmt.Errorf("execute landing template: %w", err)
	}

	return &Renderer{page: page, document: buf.Bytes()}, nil
}

// MustNewRenderer is NewRenderer for the built-in page; the embedded template
// is part of the binary so a failure here is a build defect.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer(entity.LandingPage())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer) error {
	_, err := w.Write(r.document)
	return err
}

func (r *Renderer) Bytes() []byte {
	out := make([]byte, len(r.document))
	copy(out, r.document)
	return out
}

// Page returns the content the document was rendered from.
func (r *Renderer) Page() entity.Page {
	return r.page.Clone()
}

func (r *Renderer) Len() int {
	return len(r.document)
}
