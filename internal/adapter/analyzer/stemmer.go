package analyzer

import (
	"github.com/kljensen/snowball/english"
)

// SnowballStemmer reduces English words to their stems using the
// Snowball algorithm.
type SnowballStemmer struct{}

func NewSnowballStemmer() *SnowballStemmer {
	return &SnowballStemmer{}
}

// Stem returns the stem of a word. Stopwords are stemmed like any other
// word so that stemmed stopword lists stay consistent with stemmed
// tokens.
func (s *SnowballStemmer) Stem(word string) string {
	return english.Stem(word, true)
}
