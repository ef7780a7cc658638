package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Summarize.MinSentenceLength != 6 {
		t.Errorf("expected MinSentenceLength=6, got %d", cfg.Summarize.MinSentenceLength)
	}
	if cfg.Summarize.TopN != 3 {
		t.Errorf("expected TopN=3, got %d", cfg.Summarize.TopN)
	}
	if cfg.Analyze.TopTerms != 25 {
		t.Errorf("expected TopTerms=25, got %d", cfg.Analyze.TopTerms)
	}
	if cfg.Corpus.Stopwords != "english" {
		t.Errorf("expected Stopwords=english, got %s", cfg.Corpus.Stopwords)
	}
	if len(cfg.Corpus.Includes) == 0 {
		t.Error("expected default include patterns")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textlab.yaml")

	content := `
corpus:
  stopwords: none
  stemming: true
summarize:
  top_n: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Corpus.Stopwords != "none" {
		t.Errorf("expected Stopwords=none, got %s", cfg.Corpus.Stopwords)
	}
	if !cfg.Corpus.Stemming {
		t.Error("expected Stemming=true")
	}
	if cfg.Summarize.TopN != 5 {
		t.Errorf("expected TopN=5, got %d", cfg.Summarize.TopN)
	}
	if cfg.Summarize.MinSentenceLength != 6 {
		t.Errorf("expected default MinSentenceLength=6, got %d", cfg.Summarize.MinSentenceLength)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textlab.yaml")

	content := `
analyze:
  top_terms: 50
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analyze.TopTerms != 50 {
		t.Errorf("expected TopTerms=50, got %d", cfg.Analyze.TopTerms)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textlab.yaml")

	cfg := DefaultConfig()
	cfg.Summarize.TopN = 7
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Summarize.TopN != 7 {
		t.Errorf("expected TopN=7 after round trip, got %d", loaded.Summarize.TopN)
	}
}

func TestIndexDBPath(t *testing.T) {
	path := IndexDBPath("/home/user/corpus")
	expected := filepath.Join("/home/user/corpus", ".textlab", "index.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
