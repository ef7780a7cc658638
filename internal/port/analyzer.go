package port

import "textlab/internal/domain"

type Stemmer interface {
	Stem(word string) string
}

type Lemmatizer interface {
	Lemma(word string) string
}

type EntityTagger interface {
	Entities(text string) []domain.Entity
}
