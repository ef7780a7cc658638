package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textlab/internal/adapter/analyzer"
)

var (
	entitiesDoc  int
	entitiesJSON bool
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "Extract named entities from a document",
	Long: `Extract names of people, places and organizations from a document
using a rule-based tagger.

Examples:
  textlab entities --doc 4
  textlab entities --doc 4 --json`,
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
	entitiesCmd.Flags().IntVar(&entitiesDoc, "doc", 0, "document index within the corpus")
	entitiesCmd.Flags().BoolVar(&entitiesJSON, "json", false, "output as JSON")
}

func runEntities(cmd *cobra.Command, args []string) error {
	st, err := openIndex(GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	text, err := st.GetText(entitiesDoc)
	if err != nil {
		return fmt.Errorf("failed to load document text: %w", err)
	}

	tagger := analyzer.NewRuleTagger(analyzer.NewSentenceSplitter())
	entities := tagger.Entities(text)

	if entitiesJSON {
		output, _ := json.MarshalIndent(entities, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(entities) == 0 {
		fmt.Println("No entities found.")
		return nil
	}

	for _, e := range entities {
		fmt.Printf("[%s] %s\n", e.Label, e.Text)
	}

	return nil
}
