package cli

import (
	"fmt"
	"os"

	"textlab/config"
	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/store"
)

// buildTokenizer creates the word tokenizer the whole pipeline shares.
// The summarizer must tokenize exactly like the vectorizer did, or
// vocabulary lookups would miss.
func buildTokenizer(cfg *config.Config) *analyzer.WordTokenizer {
	if cfg.Corpus.Stemming {
		return analyzer.NewWordTokenizer(analyzer.NewSnowballStemmer())
	}
	return analyzer.NewWordTokenizer(nil)
}

// corpusStopwords returns the configured stopword list. With stemming
// enabled the stopwords are stemmed too, so they match stemmed tokens.
func corpusStopwords(cfg *config.Config) []string {
	stops := analyzer.Stopwords(cfg.Corpus.Stopwords)
	if cfg.Corpus.Stemming {
		stemmer := analyzer.NewSnowballStemmer()
		for i, w := range stops {
			stops[i] = stemmer.Stem(w)
		}
	}
	return stops
}

// openIndex opens the corpus index for reading, failing if it has not
// been built yet.
func openIndex(rootDir string) (*store.BoltStore, error) {
	dbPath := config.IndexDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no index found. Run 'textlab index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return st, nil
}
