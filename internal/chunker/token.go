package chunker

import "unicode"

// tokensPerWord approximates subword tokenization of English prose.
const tokensPerWord = 1.33

// EstimateTokens approximates the token count of text. Whitespace-separated
// words count as tokensPerWord each; Han, Hiragana, Katakana and Hangul
// characters are written without spaces, so each one counts as a word.
// Non-empty text is never less than one token.
func EstimateTokens(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			inWord = false
		case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul):
			words++
			inWord = false
		case !inWord:
			words++
			inWord = true
		}
	}
	tokens := int(float64(words) * tokensPerWord)
	if tokens < 1 && text != "" {
		tokens = 1
	}
	return tokens
}
