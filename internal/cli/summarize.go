package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/vectorizer"
	"textlab/internal/usecase"
)

var (
	summarizeDoc    int
	summarizeRandom bool
	summarizeTopN   int
	summarizeMinLen int
	summarizeJSON   bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a document extractively",
	Long: `Score each sentence of a document by its average TF-IDF term weight
and report the lowest- and highest-scoring sentences.

Examples:
  textlab summarize --doc 4
  textlab summarize --random --top-n 5 --json`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().IntVar(&summarizeDoc, "doc", 0, "document index within the corpus")
	summarizeCmd.Flags().BoolVar(&summarizeRandom, "random", false, "pick a random document")
	summarizeCmd.Flags().IntVar(&summarizeTopN, "top-n", 0, "number of extremes to report (default from config)")
	summarizeCmd.Flags().IntVar(&summarizeMinLen, "min-sentence-len", 0, "minimum sentence length in characters (default from config)")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "output as JSON")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openIndex(GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	weights, err := st.GetWeights()
	if err != nil {
		return fmt.Errorf("failed to load weight model: %w", err)
	}
	model := vectorizer.ModelFromSnapshot(weights)

	docIndex := summarizeDoc
	if summarizeRandom {
		if model.NumDocs() == 0 {
			return fmt.Errorf("index is empty")
		}
		docIndex = rand.Intn(model.NumDocs())
	}

	text, err := st.GetText(docIndex)
	if err != nil {
		return fmt.Errorf("failed to load document text: %w", err)
	}

	summarizer := usecase.NewSummarizer(analyzer.NewSentenceSplitter(), buildTokenizer(cfg), model)

	opts := usecase.SummarizeOptions{
		MinSentenceLength: cfg.Summarize.MinSentenceLength,
		TopN:              cfg.Summarize.TopN,
	}
	if summarizeMinLen > 0 {
		opts.MinSentenceLength = summarizeMinLen
	}
	if summarizeTopN > 0 {
		opts.TopN = summarizeTopN
	}

	summary, err := summarizer.Summarize(docIndex, text, opts)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	if summarizeJSON {
		output, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	doc, err := st.GetDoc(docIndex)
	if err == nil {
		fmt.Printf("Document %d: %s\n", docIndex, doc.Path)
	}

	if len(summary.Lowest) == 0 {
		fmt.Println("\nNo qualifying sentences.")
		return nil
	}

	fmt.Println("\nLOWEST:")
	for _, s := range summary.Lowest {
		fmt.Printf("  [%.4f] %s\n", s.Score, s.Sentence)
	}

	fmt.Println("\nHIGHEST:")
	for _, s := range summary.Highest {
		fmt.Printf("  [%.4f] %s\n", s.Score, s.Sentence)
	}

	return nil
}
