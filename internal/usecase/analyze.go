package usecase

import (
	"sort"

	"textlab/internal/domain"
	"textlab/internal/port"
)

const DefaultTopTerms = 25

// Analyzer produces token frequency reports and extracts named entities
// from document text.
type Analyzer struct {
	words      port.WordTokenizer
	stemmer    port.Stemmer
	lemmatizer port.Lemmatizer
	tagger     port.EntityTagger
	stopwords  map[string]struct{}
}

func NewAnalyzer(
	words port.WordTokenizer,
	stemmer port.Stemmer,
	lemmatizer port.Lemmatizer,
	tagger port.EntityTagger,
	stopwords []string,
) *Analyzer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &Analyzer{
		words:      words,
		stemmer:    stemmer,
		lemmatizer: lemmatizer,
		tagger:     tagger,
		stopwords:  set,
	}
}

// TokenReportOptions controls normalization applied before counting.
// Stemming wins over lemmatization when both are requested.
type TokenReportOptions struct {
	TopN          int
	Stem          bool
	Lemmatize     bool
	KeepStopwords bool
}

// TokenReport counts normalized tokens in text and returns the TopN most
// frequent, ties broken alphabetically.
func (a *Analyzer) TokenReport(text string, opts TokenReportOptions) []domain.TermCount {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopTerms
	}

	counts := make(map[string]int)
	for _, token := range a.words.Tokenize(text) {
		if !opts.KeepStopwords {
			if _, stop := a.stopwords[token]; stop {
				continue
			}
		}
		switch {
		case opts.Stem:
			token = a.stemmer.Stem(token)
		case opts.Lemmatize:
			token = a.lemmatizer.Lemma(token)
		}
		counts[token]++
	}

	terms := make([]domain.TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, domain.TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > opts.TopN {
		terms = terms[:opts.TopN]
	}
	return terms
}

// Entities extracts named entities from text.
func (a *Analyzer) Entities(text string) []domain.Entity {
	return a.tagger.Entities(text)
}
