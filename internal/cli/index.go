package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textlab/config"
	"textlab/internal/adapter/fs"
	"textlab/internal/adapter/store"
	"textlab/internal/adapter/vectorizer"
	"textlab/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a corpus of text documents",
	Long: `Load the text documents under the given directory, build the TF-IDF
weight model over the whole corpus and store both in .textlab/index.db.

Examples:
  textlab index .                # Index current directory
  textlab index ./reviews        # Index a corpus directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDataDir(path); err != nil {
		return fmt.Errorf("failed to create .textlab directory: %w", err)
	}

	st, err := store.NewBoltStore(config.IndexDBPath(path))
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	check, err := st.CheckRebuild(cfg)
	if err != nil {
		return fmt.Errorf("failed to check index schema: %w", err)
	}
	if check.NeedsRebuild {
		fmt.Printf("Index rebuild required: %s\n", check.Reason)
	}

	tokenizer := buildTokenizer(cfg)
	stopwords := corpusStopwords(cfg)
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	vec := vectorizer.NewTfidfVectorizer(tokenizer, stopwords)

	indexUC := usecase.NewIndexUseCase(st, walker, vec, tokenizer)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := indexUC.Index(path, progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	if err := st.MarkCurrent(cfg); err != nil {
		return fmt.Errorf("failed to record index schema: %w", err)
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Documents indexed: %d\n", result.DocsIndexed)
	fmt.Printf("  Vocabulary terms:  %d\n", result.VocabularySize)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nIndex stored at: %s\n", config.IndexDBPath(path))
	return nil
}
