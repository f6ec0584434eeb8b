package metadata

import (
	"strings"

	"github.com/dgallion1/ragview/internal/doctree"
)

// FromChunk derives the metadata record for a locally chunked document.
func FromChunk(c doctree.Chunk) ChunkMetadata {
	var m ChunkMetadata
	if c.Row != 0 {
		m.RowNumber = Int(c.Row)
	}
	if c.PageStart != 0 {
		m.PageNumber = Int(c.PageStart)
	}
	if p := HeaderPath(c.Breadcrumb); p != "" {
		m.HeaderPath = String(p)
	}
	return m
}

// HeaderPath joins section titles into the slash-delimited form used on
// the wire, e.g. ["Intro", "Background"] -> "/Intro/Background/".
// Slashes inside a title become spaces. Titles that are blank after that
// are skipped, and "" is returned when no title remains.
func HeaderPath(titles []string) string {
	var b strings.Builder
	for _, t := range titles {
		t = strings.TrimSpace(strings.ReplaceAll(t, "/", " "))
		if t == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('/')
		}
		b.WriteString(t)
		b.WriteByte('/')
	}
	return b.String()
}
