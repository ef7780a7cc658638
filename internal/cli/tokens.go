package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textlab/internal/adapter/analyzer"
	"textlab/internal/usecase"
)

var (
	tokensDoc       int
	tokensTop       int
	tokensStem      bool
	tokensLemma     bool
	tokensKeepStops bool
	tokensJSON      bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Report token frequencies for a document",
	Long: `Tokenize a document and report the most frequent terms. Stopwords are
removed unless --keep-stopwords is given; --stem and --lemma normalize
tokens before counting.

Examples:
  textlab tokens --doc 4 --top 25
  textlab tokens --doc 4 --stem
  textlab tokens --doc 4 --lemma --keep-stopwords`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().IntVar(&tokensDoc, "doc", 0, "document index within the corpus")
	tokensCmd.Flags().IntVar(&tokensTop, "top", 0, "number of terms to report (default from config)")
	tokensCmd.Flags().BoolVar(&tokensStem, "stem", false, "stem tokens before counting")
	tokensCmd.Flags().BoolVar(&tokensLemma, "lemma", false, "lemmatize tokens before counting")
	tokensCmd.Flags().BoolVar(&tokensKeepStops, "keep-stopwords", false, "count stopwords too")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openIndex(GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	text, err := st.GetText(tokensDoc)
	if err != nil {
		return fmt.Errorf("failed to load document text: %w", err)
	}

	a := usecase.NewAnalyzer(
		analyzer.NewWordTokenizer(nil),
		analyzer.NewSnowballStemmer(),
		analyzer.NewDictLemmatizer(),
		analyzer.NewRuleTagger(analyzer.NewSentenceSplitter()),
		analyzer.Stopwords(cfg.Corpus.Stopwords),
	)

	topN := cfg.Analyze.TopTerms
	if tokensTop > 0 {
		topN = tokensTop
	}

	report := a.TokenReport(text, usecase.TokenReportOptions{
		TopN:          topN,
		Stem:          tokensStem,
		Lemmatize:     tokensLemma,
		KeepStopwords: tokensKeepStops,
	})

	if tokensJSON {
		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(report) == 0 {
		fmt.Println("No tokens found.")
		return nil
	}

	for _, tc := range report {
		fmt.Printf("%6d  %s\n", tc.Count, tc.Term)
	}

	return nil
}
