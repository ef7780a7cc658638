package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/fs"
	"textlab/internal/adapter/memstore"
	"textlab/internal/adapter/vectorizer"
	"textlab/internal/domain"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestIndex_BuildsCorpusAndModel(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "Bob likes sports",
		"b.txt": "Bob hates sports",
		"c.txt": "Bob likes likes trees",
		"d.md":  "ignored markdown",
	})

	tokenizer := analyzer.NewWordTokenizer(nil)
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(
		st,
		fs.NewWalker([]string{"**/*.txt"}, nil),
		vectorizer.NewTfidfVectorizer(tokenizer, nil),
		tokenizer,
	)

	result, err := uc.Index(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.DocsIndexed != 3 {
		t.Errorf("expected 3 documents, got %d", result.DocsIndexed)
	}
	if result.VocabularySize != 5 {
		t.Errorf("expected 5 vocabulary terms, got %d", result.VocabularySize)
	}

	// Corpus ordering follows sorted paths, so a.txt is document 0.
	docs, err := st.ListDocs()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 stored documents, got %d", len(docs))
	}
	if filepath.Base(docs[0].Path) != "a.txt" || docs[0].Index != 0 {
		t.Errorf("unexpected first document: %+v", docs[0])
	}

	text, err := st.GetText(2)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Bob likes likes trees" {
		t.Errorf("unexpected text for doc 2: %q", text)
	}

	weights, err := st.GetWeights()
	if err != nil {
		t.Fatal(err)
	}
	if len(weights.Terms) != 5 || len(weights.Rows) != 3 {
		t.Errorf("unexpected model shape: %d terms, %d rows", len(weights.Terms), len(weights.Rows))
	}

	stats, err := st.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalDocs != 3 || stats.VocabSize != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgDocLen <= 0 {
		t.Errorf("expected positive average document length, got %f", stats.AvgDocLen)
	}
}

func TestIndex_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()

	tokenizer := analyzer.NewWordTokenizer(nil)
	uc := NewIndexUseCase(
		memstore.NewMemoryStore(),
		fs.NewWalker([]string{"**/*.txt"}, nil),
		vectorizer.NewTfidfVectorizer(tokenizer, nil),
		tokenizer,
	)

	_, err := uc.Index(dir, nil)
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestIndex_ThenSummarize(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "The plot was predictable and dull. The cinematography was absolutely stunning.",
		"b.txt": "A different review about acting and dialogue quality.",
	})

	tokenizer := analyzer.NewWordTokenizer(nil)
	st := memstore.NewMemoryStore()
	uc := NewIndexUseCase(
		st,
		fs.NewWalker([]string{"**/*.txt"}, nil),
		vectorizer.NewTfidfVectorizer(tokenizer, analyzer.Stopwords("english")),
		tokenizer,
	)

	if _, err := uc.Index(dir, nil); err != nil {
		t.Fatal(err)
	}

	weights, err := st.GetWeights()
	if err != nil {
		t.Fatal(err)
	}
	model := vectorizer.ModelFromSnapshot(weights)

	text, err := st.GetText(0)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSummarizer(analyzer.NewSentenceSplitter(), tokenizer, model)
	summary, err := s.Summarize(0, text, SummarizeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if len(summary.Lowest) != 2 || len(summary.Highest) != 2 {
		t.Fatalf("expected both sentences ranked, got %d and %d", len(summary.Lowest), len(summary.Highest))
	}
}

func TestIndex_ReportsProgress(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "first document text",
		"b.txt": "second document text",
	})

	tokenizer := analyzer.NewWordTokenizer(nil)
	uc := NewIndexUseCase(
		memstore.NewMemoryStore(),
		fs.NewWalker([]string{"**/*.txt"}, nil),
		vectorizer.NewTfidfVectorizer(tokenizer, nil),
		tokenizer,
	)

	var calls int
	var lastProcessed, lastTotal int
	_, err := uc.Index(dir, func(processed, total int, path string) {
		calls++
		lastProcessed, lastTotal = processed, total
	})
	if err != nil {
		t.Fatal(err)
	}

	if calls == 0 {
		t.Fatal("expected progress callbacks")
	}
	if lastProcessed != lastTotal || lastTotal != 2 {
		t.Errorf("expected final progress 2/2, got %d/%d", lastProcessed, lastTotal)
	}
}
