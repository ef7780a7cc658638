package domain

import "errors"

var (
	// ErrEmptyCorpus is returned when a term-weight model is built from
	// zero documents.
	ErrEmptyCorpus = errors.New("corpus contains no documents")

	// ErrInvalidDocumentIndex is returned when a document index is
	// outside the corpus bounds.
	ErrInvalidDocumentIndex = errors.New("document index out of range")
)
