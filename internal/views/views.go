// Package views renders ragview's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/dgallion1/ragview/internal/assets"
	"github.com/dgallion1/ragview/internal/metadata"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render.
const (
	PageGettingStarted  = "getting_started"
	PageNoKnowledgeBase = "no_knowledge_base"
	PageChunk           = "chunk"
	PagePreview         = "preview"
	PageError           = "error"
)

var pageNames = []string{PageGettingStarted, PageNoKnowledgeBase, PageChunk, PagePreview, PageError}

// partials are parsed into every page.
var partials = []string{"templates/layout.html", "templates/selling_points.html", "templates/metadata_card.html"}

// Page carries the fields the layout needs.
type Page struct {
	Title      string
	Stylesheet string
}

func newPage(title string) Page {
	return Page{Title: title, Stylesheet: assets.Style}
}

// Renderer executes parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// New parses every page template.
func New() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageNames)),
		md:    goldmark.New(),
	}
	for _, name := range pageNames {
		files := append([]string{"templates/" + name + ".html"}, partials...)
		t, err := template.New(name).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page into w. The page is executed into a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderHTTP renders page with the given status and an HTML content type.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// ErrorPage is the data for PageError.
type ErrorPage struct {
	Page
	Status     int
	StatusText string
	Message    string
}

// NewErrorPage builds an error page for an HTTP status.
func NewErrorPage(status int, message string) ErrorPage {
	return ErrorPage{
		Page:       newPage(http.StatusText(status)),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}
}

// ChunkPage is the data for PageChunk.
type ChunkPage struct {
	Page
	DataSourceID int64
	ChunkID      string
	Text         string
	Metadata     MetadataCard
}

// NewChunkPage builds the source view for one retrieved chunk.
func NewChunkPage(dataSourceID int64, chunkID, text string, m metadata.ChunkMetadata) ChunkPage {
	return ChunkPage{
		Page:         newPage("Source"),
		DataSourceID: dataSourceID,
		ChunkID:      chunkID,
		Text:         text,
		Metadata:     NewMetadataCard(m),
	}
}
