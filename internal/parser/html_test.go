package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLParser_Headings(t *testing.T) {
	input := `<html><head><title>Handbook</title><style>p{}</style></head>
<body>
<nav><p>skip me</p></nav>
<h1>Intro</h1>
<p>Welcome.</p>
<h2>Background</h2>
<p>History <b>matters</b>.</p>
<ul><li>one</li><li>two</li></ul>
<h1>Usage</h1>
<p>Run it.</p>
<script>var p = 1;</script>
</body></html>`

	tree, err := (&HTMLParser{}).Parse(strings.NewReader(input), "handbook.html")
	require.NoError(t, err)

	assert.Equal(t, "Handbook", tree.Title)
	require.Len(t, tree.Children, 2)

	intro := tree.Children[0]
	assert.Equal(t, "Intro", intro.Title)
	assert.Equal(t, "Welcome.", intro.Text)
	require.Len(t, intro.Children, 1)
	assert.Equal(t, "Background", intro.Children[0].Title)
	assert.Equal(t, "History matters.\n\none\n\ntwo", intro.Children[0].Text)

	assert.Equal(t, "Usage", tree.Children[1].Title)
	assert.NotContains(t, tree.Children[1].Text, "var p")
}

func TestHTMLParser_NoHeadings(t *testing.T) {
	tree, err := (&HTMLParser{}).Parse(strings.NewReader("<p>a</p><p>b</p>"), "page.htm")
	require.NoError(t, err)
	assert.Equal(t, "page", tree.Title)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "a\n\nb", tree.Children[0].Text)
}

func TestHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, headingLevel("h1"))
	assert.Equal(t, 6, headingLevel("h6"))
	assert.Equal(t, 0, headingLevel("h7"))
	assert.Equal(t, 0, headingLevel("hr"))
	assert.Equal(t, 0, headingLevel("p"))
}
