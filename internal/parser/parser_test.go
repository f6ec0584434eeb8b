package parser

import (
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile(t *testing.T) {
	cases := map[string]Parser{
		"a.txt":      &TextParser{},
		"a.MD":       &MarkdownParser{},
		"a.markdown": &MarkdownParser{},
		"a.csv":      &CSVParser{},
		"a.htm":      &HTMLParser{},
		"a.pdf":      &PDFParser{FallbackPdftotext: true},
		"a.docx":     &DOCXParser{},
	}
	for name, want := range cases {
		got, err := ForFile(name, Options{PDFFallbackPdftotext: true})
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		assert.True(t, IsSupportedExtension(name), name)
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("song.mp3", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mp3")
	assert.False(t, IsSupportedExtension("song.mp3"))
	assert.False(t, IsSupportedExtension("noext"))
}

func TestExtensions_Sorted(t *testing.T) {
	exts := Extensions()
	assert.Len(t, exts, len(SupportedExtensions))
	assert.IsIncreasing(t, exts)
}

func TestSectionBuilder_PopsToParentLevel(t *testing.T) {
	b := newSectionBuilder("doc")
	b.heading(1, "A")
	b.heading(3, "A.x")
	b.text("deep")
	b.heading(2, "A.1")
	b.heading(1, "B")
	b.text("bee")

	top := b.children()
	require.Len(t, top, 2)
	require.Len(t, top[0].Children, 2)
	assert.Equal(t, "A.x", top[0].Children[0].Title)
	assert.Equal(t, "deep", top[0].Children[0].Text)
	assert.Equal(t, "A.1", top[0].Children[1].Title)
	assert.Equal(t, "bee", top[1].Text)
}

func TestDocxHeadingLevel_NoStyle(t *testing.T) {
	assert.Equal(t, 0, docxHeadingLevel(&docx.Paragraph{}))
}
