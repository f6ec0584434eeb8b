package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	cases := map[string]struct {
		text string
		want int
	}{
		"empty":           {"", 0},
		"whitespace only": {"  \n\t", 1},
		"one word":        {"hello", 1},
		"prose":           {"the quick  brown\nfox", 5},
		"hundred words":   {strings.Repeat("word ", 100), 133},
		"han":             {"检索增强生成", 7},
		"mixed":           {"RAG 检索 studio", 5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, EstimateTokens(tc.text))
		})
	}
}
