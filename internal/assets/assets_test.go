package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/dgallion1/ragview/internal/sellingpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsReferencedImages(t *testing.T) {
	paths := []string{Logo, Welcome, Style}
	for _, p := range sellingpoints.GettingStarted() {
		paths = append(paths, p.Image)
	}
	for _, p := range sellingpoints.NoKnowledgeBase() {
		paths = append(paths, p.Image)
	}
	for _, p := range paths {
		name := strings.TrimPrefix(p, "/assets/")
		data, err := fs.ReadFile(FS(), name)
		require.NoError(t, err, p)
		assert.NotEmpty(t, data, p)
	}
}
