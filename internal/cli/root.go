package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"textlab/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "textlab",
	Short: "Corpus analysis and extractive summarization",
	Long: `textlab indexes a corpus of text documents, builds a TF-IDF weight
model over it, and analyzes individual documents: extractive
summarization, token frequency reports and named-entity extraction.

Example usage:
  textlab index ./reviews          # Index a corpus directory
  textlab summarize --doc 4        # Summarize document 4
  textlab summarize --random       # Summarize a random document
  textlab tokens --doc 4 --stem    # Stemmed token frequencies
  textlab entities --doc 4         # Named entities`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textlab.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "corpus directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
