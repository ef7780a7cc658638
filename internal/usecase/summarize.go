package usecase

import (
	"fmt"
	"sort"

	"textlab/internal/domain"
	"textlab/internal/port"
)

const (
	DefaultMinSentenceLength = 6
	DefaultTopN              = 3
)

// SummarizeOptions controls sentence filtering and how many extremes are
// reported. Zero values fall back to the defaults.
type SummarizeOptions struct {
	// MinSentenceLength drops sentences of this many characters or
	// fewer before scoring.
	MinSentenceLength int

	// TopN is the number of lowest- and highest-scoring sentences to
	// report.
	TopN int
}

func (o SummarizeOptions) withDefaults() SummarizeOptions {
	if o.MinSentenceLength == 0 {
		o.MinSentenceLength = DefaultMinSentenceLength
	}
	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}
	return o
}

// Summarizer scores each sentence of a document by its average term
// weight in a prebuilt document-term model and reports the extremes.
type Summarizer struct {
	sentences port.SentenceTokenizer
	words     port.WordTokenizer
	model     port.TermWeightModel
}

func NewSummarizer(
	sentences port.SentenceTokenizer,
	words port.WordTokenizer,
	model port.TermWeightModel,
) *Summarizer {
	return &Summarizer{
		sentences: sentences,
		words:     words,
		model:     model,
	}
}

// Summarize scores the sentences of one document. The document index
// selects the model row; text is the raw text of that document. A
// document with no qualifying sentences yields empty result lists, not
// an error.
func (s *Summarizer) Summarize(docIndex int, text string, opts SummarizeOptions) (*domain.Summary, error) {
	if s.model.NumDocs() == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	if docIndex < 0 || docIndex >= s.model.NumDocs() {
		return nil, fmt.Errorf("document %d of %d: %w", docIndex, s.model.NumDocs(), domain.ErrInvalidDocumentIndex)
	}

	opts = opts.withDefaults()

	var scores []domain.SentenceScore
	for pos, sentence := range s.sentences.Sentences(text) {
		if len(sentence) <= opts.MinSentenceLength {
			continue
		}

		var sum float64
		found := 0
		for _, token := range s.words.Tokenize(sentence) {
			termIdx, ok := s.model.TermIndex(token)
			if !ok {
				// Not in the vocabulary: skipped, not counted.
				continue
			}
			sum += s.model.Weight(docIndex, termIdx)
			found++
		}

		// The +1 guards against empty sentences and dampens very
		// short ones.
		scores = append(scores, domain.SentenceScore{
			Score:    sum / float64(found+1),
			Sentence: sentence,
			Position: pos,
		})
	}

	return &domain.Summary{
		DocIndex: docIndex,
		Lowest:   rank(scores, opts.TopN, false),
		Highest:  rank(scores, opts.TopN, true),
	}, nil
}

// rank returns the top n scores, ascending or descending. The sort is
// stable: ties keep the original sentence order.
func rank(scores []domain.SentenceScore, n int, descending bool) []domain.SentenceScore {
	ranked := make([]domain.SentenceScore, len(scores))
	copy(ranked, scores)

	if descending {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	} else {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score < ranked[j].Score })
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
