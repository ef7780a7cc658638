package port

import "textlab/internal/domain"

type CorpusStore interface {
	PutDoc(doc domain.Document) error

	GetDoc(index int) (domain.Document, error)

	ListDocs() ([]domain.Document, error)

	PutText(index int, text string) error

	GetText(index int) (string, error)

	PutWeights(weights *domain.TermWeights) error

	GetWeights() (*domain.TermWeights, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Clear() error

	Close() error
}
