package views

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/ragview/internal/doctree"
	"github.com/dgallion1/ragview/internal/metadata"
)

// excerptRunes caps the chunk text shown in a preview card.
const excerptRunes = 600

// PreviewPage is the data for PagePreview. Filename is empty until a
// document has been uploaded.
type PreviewPage struct {
	Page
	Action   string
	Accept   string
	Filename string
	Chunks   []PreviewChunk
}

// PreviewChunk is one chunk of an uploaded document with its metadata card.
type PreviewChunk struct {
	Index    int
	Excerpt  string
	Metadata MetadataCard
}

// NewPreviewPage builds the preview page. extensions populate the file
// input's accept attribute.
func NewPreviewPage(action string, extensions []string, filename string, chunks []doctree.Chunk) PreviewPage {
	p := PreviewPage{
		Page:     newPage("Preview"),
		Action:   action,
		Accept:   strings.Join(extensions, ","),
		Filename: filename,
		Chunks:   make([]PreviewChunk, 0, len(chunks)),
	}
	for _, c := range chunks {
		p.Chunks = append(p.Chunks, PreviewChunk{
			Index:    c.Index,
			Excerpt:  excerpt(c.Text, excerptRunes),
			Metadata: NewMetadataCard(metadata.FromChunk(c)),
		})
	}
	return p
}

func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}
