package vectorizer

import (
	"math"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// TfidfVectorizer builds a TF-IDF document-term weight matrix over a
// corpus. IDF is smoothed, idf(t) = ln((1+N)/(1+df(t))) + 1, and each
// document row is L2-normalized, so weights are comparable across
// documents of different lengths. Deterministic for identical corpus and
// stopword set.
type TfidfVectorizer struct {
	counts *CountVectorizer
}

func NewTfidfVectorizer(tokenizer port.WordTokenizer, stopwords []string) *TfidfVectorizer {
	return &TfidfVectorizer{
		counts: NewCountVectorizer(tokenizer, stopwords),
	}
}

// Fit builds the weight matrix from the whole corpus. IDF needs global
// corpus statistics, so the model must be fitted before any document is
// scored.
func (v *TfidfVectorizer) Fit(docs []string) (*Model, error) {
	counts, err := v.counts.Fit(docs)
	if err != nil {
		return nil, err
	}

	n := float64(counts.NumDocs())
	idf := make([]float64, len(counts.terms))
	for i := range counts.terms {
		df := float64(counts.DocFrequency(i))
		idf[i] = math.Log((1+n)/(1+df)) + 1
	}

	rows := make([]map[int]float64, counts.NumDocs())
	for docIdx, countRow := range counts.rows {
		row := make(map[int]float64, len(countRow))
		var norm float64
		for termIdx, tf := range countRow {
			w := float64(tf) * idf[termIdx]
			row[termIdx] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for termIdx := range row {
				row[termIdx] /= norm
			}
		}
		rows[docIdx] = row
	}

	return &Model{
		terms: counts.terms,
		index: counts.index,
		rows:  rows,
	}, nil
}

// Model is a fitted TF-IDF weight matrix. It is read-only after fitting
// and implements port.TermWeightModel.
type Model struct {
	terms []string
	index map[string]int
	rows  []map[int]float64
}

func (m *Model) Vocabulary() []string {
	return m.terms
}

func (m *Model) TermIndex(term string) (int, bool) {
	i, ok := m.index[term]
	return i, ok
}

func (m *Model) Weight(docIndex, termIndex int) float64 {
	if docIndex < 0 || docIndex >= len(m.rows) {
		return 0
	}
	return m.rows[docIndex][termIndex]
}

func (m *Model) NumDocs() int {
	return len(m.rows)
}

// Snapshot exports the model for persistence.
func (m *Model) Snapshot() *domain.TermWeights {
	return &domain.TermWeights{
		Terms: m.terms,
		Rows:  m.rows,
	}
}

// ModelFromSnapshot rebuilds a model from a persisted snapshot.
func ModelFromSnapshot(w *domain.TermWeights) *Model {
	index := make(map[string]int, len(w.Terms))
	for i, term := range w.Terms {
		index[term] = i
	}
	return &Model{
		terms: w.Terms,
		index: index,
		rows:  w.Rows,
	}
}
