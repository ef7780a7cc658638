package vectorizer

import (
	"sort"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// CountVectorizer builds a document-term count matrix over a corpus.
// Stopwords are excluded from the vocabulary; the vocabulary is sorted so
// term indices are stable for identical input.
type CountVectorizer struct {
	tokenizer port.WordTokenizer
	stopwords map[string]struct{}
}

func NewCountVectorizer(tokenizer port.WordTokenizer, stopwords []string) *CountVectorizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &CountVectorizer{
		tokenizer: tokenizer,
		stopwords: set,
	}
}

// Fit tokenizes the corpus and builds the vocabulary and count matrix.
func (v *CountVectorizer) Fit(docs []string) (*CountModel, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	docTokens := make([][]string, len(docs))
	vocab := make(map[string]struct{})

	for i, doc := range docs {
		tokens := v.tokenizer.Tokenize(doc)
		kept := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if _, stop := v.stopwords[tok]; stop {
				continue
			}
			kept = append(kept, tok)
			vocab[tok] = struct{}{}
		}
		docTokens[i] = kept
	}

	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	rows := make([]map[int]int, len(docs))
	docFreq := make([]int, len(terms))
	for i, tokens := range docTokens {
		row := make(map[int]int)
		for _, tok := range tokens {
			row[index[tok]]++
		}
		for termIdx := range row {
			docFreq[termIdx]++
		}
		rows[i] = row
	}

	return &CountModel{
		terms:   terms,
		index:   index,
		rows:    rows,
		docFreq: docFreq,
	}, nil
}

// CountModel is a fitted document-term count matrix.
type CountModel struct {
	terms   []string
	index   map[string]int
	rows    []map[int]int
	docFreq []int
}

func (m *CountModel) Vocabulary() []string {
	return m.terms
}

func (m *CountModel) TermIndex(term string) (int, bool) {
	i, ok := m.index[term]
	return i, ok
}

// Count returns the raw term count at (document row, term column).
func (m *CountModel) Count(docIndex, termIndex int) int {
	if docIndex < 0 || docIndex >= len(m.rows) {
		return 0
	}
	return m.rows[docIndex][termIndex]
}

// DocFrequency returns the number of documents containing the term.
func (m *CountModel) DocFrequency(termIndex int) int {
	if termIndex < 0 || termIndex >= len(m.docFreq) {
		return 0
	}
	return m.docFreq[termIndex]
}

func (m *CountModel) NumDocs() int {
	return len(m.rows)
}
