package sellingpoints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLists_UniqueTitlesAndAssets(t *testing.T) {
	for name, list := range map[string][]SellingPoint{
		"getting started":   GettingStarted(),
		"no knowledge base": NoKnowledgeBase(),
	} {
		assert.NotEmpty(t, list, name)
		seen := map[string]bool{}
		for _, p := range list {
			assert.False(t, seen[p.Title], "%s: duplicate title %q", name, p.Title)
			seen[p.Title] = true
			assert.True(t, strings.HasPrefix(p.Image, "/assets/images/"), p.Image)
			assert.NotEmpty(t, p.AltText)
			assert.NotEmpty(t, p.Body)
		}
	}
}

func TestGettingStarted_ReturnsCopy(t *testing.T) {
	a := GettingStarted()
	a[0].Title = "changed"
	assert.NotEqual(t, "changed", GettingStarted()[0].Title)
}
