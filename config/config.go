package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the textlab tool.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Summarize SummarizeConfig `yaml:"summarize"`
	Analyze   AnalyzeConfig   `yaml:"analyze"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CorpusConfig controls corpus loading and vocabulary building.
type CorpusConfig struct {
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	Stopwords string   `yaml:"stopwords"` // "english" or "none"
	Stemming  bool     `yaml:"stemming"`
}

// SummarizeConfig holds sentence scoring thresholds.
type SummarizeConfig struct {
	MinSentenceLength int `yaml:"min_sentence_length"`
	TopN              int `yaml:"top_n"`
}

// AnalyzeConfig holds token report settings.
type AnalyzeConfig struct {
	TopTerms int `yaml:"top_terms"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Includes:  []string{"**/*.txt", "**/*.md"},
			Excludes:  []string{"**/node_modules/**", "**/.git/**", "**/.textlab/**"},
			Stopwords: "english",
			Stemming:  false,
		},
		Summarize: SummarizeConfig{
			MinSentenceLength: 6,
			TopN:              3,
		},
		Analyze: AnalyzeConfig{
			TopTerms: 25,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// textlab.yaml, then .textlab/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textlab.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textlab", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the corpus index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".textlab", "index.db")
}

// EnsureDataDir ensures the .textlab directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textlab"), 0755)
}
