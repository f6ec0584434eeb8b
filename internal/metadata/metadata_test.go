package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(items []BreadcrumbItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestBreadcrumb(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"nested", "/A/B/C/", []string{"A", "B", "C"}},
		{"double delimiter", "a//b", []string{"a", "b"}},
		{"trim per segment", "  a /b ", []string{"a", "b"}},
		{"spaced", " A / B ", []string{"A", "B"}},
		{"no delimiters", "Intro", []string{"Intro"}},
		{"inner spaces kept", "/Getting Started/Install Steps/", []string{"Getting Started", "Install Steps"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles(Breadcrumb(tc.in)))
		})
	}
}

func TestBreadcrumb_Absent(t *testing.T) {
	assert.Nil(t, Breadcrumb(""))
	assert.Nil(t, Breadcrumb("/"))
	assert.Nil(t, Breadcrumb("///"))
	assert.Nil(t, ChunkMetadata{}.Breadcrumb())
}

func TestHasMetadata_Empty(t *testing.T) {
	assert.False(t, ChunkMetadata{}.HasMetadata())
	assert.False(t, ChunkMetadata{RowNumber: Int(0), PageNumber: Int(0)}.HasMetadata())
	assert.False(t, ChunkMetadata{HeaderPath: String("")}.HasMetadata())
}

func TestHasMetadata_RowOnly(t *testing.T) {
	m := ChunkMetadata{RowNumber: Int(5)}
	assert.True(t, m.HasMetadata())
	assert.Equal(t, 5, m.Row())
	assert.Equal(t, 0, m.Page())
	assert.Empty(t, m.Breadcrumb())
}

func TestHasMetadata_PageOnly(t *testing.T) {
	assert.True(t, ChunkMetadata{PageNumber: Int(12)}.HasMetadata())
}

func TestHasMetadata_HeaderPathThreshold(t *testing.T) {
	assert.False(t, ChunkMetadata{HeaderPath: String("/")}.HasMetadata())
	assert.False(t, ChunkMetadata{HeaderPath: String("X")}.HasMetadata())
	assert.True(t, ChunkMetadata{HeaderPath: String("XY")}.HasMetadata())
	assert.True(t, ChunkMetadata{HeaderPath: String("//")}.HasMetadata())
	assert.False(t, ChunkMetadata{HeaderPath: String("é")}.HasMetadata())
	assert.True(t, ChunkMetadata{HeaderPath: String("😀")}.HasMetadata(), "astral characters are two UTF-16 units")
	assert.True(t, ChunkMetadata{HeaderPath: String("éé")}.HasMetadata())
}

func TestChunkMetadata_JSON(t *testing.T) {
	var m ChunkMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"page_number": 3, "header_path": "/Intro/"}`), &m))
	assert.Nil(t, m.RowNumber)
	require.NotNil(t, m.PageNumber)
	assert.Equal(t, 3, *m.PageNumber)
	assert.Equal(t, "/Intro/", m.Path())

	out, err := json.Marshal(ChunkMetadata{RowNumber: Int(7)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row_number": 7}`, string(out))
}
