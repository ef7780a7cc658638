package memstore

import (
	"fmt"
	"sync"

	"textlab/internal/domain"
)

// MemoryStore is an in-memory CorpusStore for tests and embedding the
// library without an on-disk index.
type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[int]domain.Document
	texts   map[int]string
	weights *domain.TermWeights
	stats   domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[int]domain.Document),
		texts: make(map[int]string),
	}
}

func (s *MemoryStore) PutDoc(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Index] = doc
	return nil
}

func (s *MemoryStore) GetDoc(index int) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[index]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %d: %w", index, domain.ErrInvalidDocumentIndex)
	}
	return doc, nil
}

func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for i := 0; i < len(s.docs); i++ {
		if doc, ok := s.docs[i]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *MemoryStore) PutText(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[index] = text
	return nil
}

func (s *MemoryStore) GetText(index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.texts[index]
	if !ok {
		return "", fmt.Errorf("text %d: %w", index, domain.ErrInvalidDocumentIndex)
	}
	return text, nil
}

func (s *MemoryStore) PutWeights(weights *domain.TermWeights) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = weights
	return nil
}

func (s *MemoryStore) GetWeights() (*domain.TermWeights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.weights == nil {
		return nil, fmt.Errorf("no weight model stored: %w", domain.ErrEmptyCorpus)
	}
	return s.weights, nil
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[int]domain.Document)
	s.texts = make(map[int]string)
	s.weights = nil
	s.stats = domain.Stats{}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
