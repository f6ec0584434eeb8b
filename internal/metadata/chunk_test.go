package metadata

import (
	"testing"

	"github.com/dgallion1/ragview/internal/doctree"
	"github.com/stretchr/testify/assert"
)

func TestFromChunk_Breadcrumb(t *testing.T) {
	m := FromChunk(doctree.Chunk{Breadcrumb: []string{"Intro", "Background"}})
	assert.Equal(t, "/Intro/Background/", m.Path())
	assert.Nil(t, m.RowNumber)
	assert.Nil(t, m.PageNumber)
	assert.Equal(t, []string{"Intro", "Background"}, titles(m.Breadcrumb()))
}

func TestFromChunk_PageAndRow(t *testing.T) {
	m := FromChunk(doctree.Chunk{PageStart: 4, PageEnd: 4, Row: 22})
	assert.Equal(t, 4, m.Page())
	assert.Equal(t, 22, m.Row())
	assert.Nil(t, m.HeaderPath)
	assert.True(t, m.HasMetadata())
}

func TestFromChunk_Nothing(t *testing.T) {
	assert.False(t, FromChunk(doctree.Chunk{Text: "loose text"}).HasMetadata())
}

func TestHeaderPath_EscapesSlashes(t *testing.T) {
	assert.Equal(t, "/Q1 Q2/", HeaderPath([]string{"Q1/Q2"}))
}

func TestHeaderPath_SkipsBlankTitles(t *testing.T) {
	assert.Equal(t, "/Guide/Setup/", HeaderPath([]string{"Guide", "/", "  ", "Setup"}))
	assert.Equal(t, "/a b/", HeaderPath([]string{" a/b "}))
	assert.Equal(t, "", HeaderPath([]string{"/", " / "}))
	assert.Equal(t, "", HeaderPath(nil))
}

func TestFromChunk_SlashOnlyHeading(t *testing.T) {
	m := FromChunk(doctree.Chunk{Breadcrumb: []string{"Guide", "/"}})
	assert.Equal(t, "/Guide/", m.Path())
	assert.Equal(t, []string{"Guide"}, titles(m.Breadcrumb()))

	m = FromChunk(doctree.Chunk{Breadcrumb: []string{"/"}})
	assert.Nil(t, m.HeaderPath)
	assert.False(t, m.HasMetadata())
}
