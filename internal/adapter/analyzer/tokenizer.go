package analyzer

import (
	"strings"
	"unicode"

	"textlab/internal/port"
)

// WordTokenizer splits text into lowercase word tokens. Tokens must start
// with a letter and be at least two characters long; everything else is
// treated as noise. An optional stemmer reduces tokens to their stems.
type WordTokenizer struct {
	stemmer port.Stemmer
}

// NewWordTokenizer creates a word tokenizer. A nil stemmer disables
// stemming.
func NewWordTokenizer(stemmer port.Stemmer) *WordTokenizer {
	return &WordTokenizer{stemmer: stemmer}
}

// Tokenize splits text into normalized tokens.
func (t *WordTokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		first, _ := firstRune(word)
		if !unicode.IsLetter(first) {
			continue
		}
		word = strings.ToLower(word)
		if t.stemmer != nil {
			word = t.stemmer.Stem(word)
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// splitWords splits text on unicode word boundaries. Letters, digits and
// underscores form words; everything else separates them.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
