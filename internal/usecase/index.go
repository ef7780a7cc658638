package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"textlab/internal/adapter/fs"
	"textlab/internal/adapter/vectorizer"
	"textlab/internal/domain"
	"textlab/internal/port"
)

// IndexUseCase loads a corpus from disk, fits the TF-IDF model over the
// whole corpus and persists both. The index is always rebuilt from
// scratch: IDF weights depend on global corpus statistics, so a partial
// update would leave every other row stale.
type IndexUseCase struct {
	store      port.CorpusStore
	walker     *fs.Walker
	vectorizer *vectorizer.TfidfVectorizer
	words      port.WordTokenizer
}

func NewIndexUseCase(
	store port.CorpusStore,
	walker *fs.Walker,
	vec *vectorizer.TfidfVectorizer,
	words port.WordTokenizer,
) *IndexUseCase {
	return &IndexUseCase{
		store:      store,
		walker:     walker,
		vectorizer: vec,
		words:      words,
	}
}

// IndexResult contains the results of an index build.
type IndexResult struct {
	DocsIndexed    int
	VocabularySize int
	Errors         []string
}

// ProgressFunc reports indexing progress.
type ProgressFunc func(processed, total int, path string)

// Index builds the corpus index under root. Returns
// domain.ErrEmptyCorpus if no documents match the corpus patterns.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	if err := u.store.Clear(); err != nil {
		return nil, fmt.Errorf("failed to clear index: %w", err)
	}

	var docs []domain.Document
	var texts []string
	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.Path)
		}

		content, err := fs.ReadFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}

		docs = append(docs, domain.Document{
			ID:      generateDocID(file.Path),
			Path:    file.Path,
			Index:   len(docs),
			ModTime: time.Unix(file.ModTime, 0),
		})
		texts = append(texts, content)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents under %s: %w", root, domain.ErrEmptyCorpus)
	}

	model, err := u.vectorizer.Fit(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to fit weight model: %w", err)
	}

	totalTokens := 0
	for i, doc := range docs {
		if err := u.store.PutDoc(doc); err != nil {
			return nil, fmt.Errorf("failed to store document %s: %w", doc.Path, err)
		}
		if err := u.store.PutText(doc.Index, texts[i]); err != nil {
			return nil, fmt.Errorf("failed to store text %s: %w", doc.Path, err)
		}
		totalTokens += len(u.words.Tokenize(texts[i]))
	}

	if err := u.store.PutWeights(model.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to store weight model: %w", err)
	}

	stats := domain.Stats{
		TotalDocs: len(docs),
		VocabSize: len(model.Vocabulary()),
		AvgDocLen: float64(totalTokens) / float64(len(docs)),
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	if progress != nil {
		progress(len(files), len(files), "")
	}

	result.DocsIndexed = len(docs)
	result.VocabularySize = len(model.Vocabulary())

	return result, nil
}

// generateDocID creates a stable ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
