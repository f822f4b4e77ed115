package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/logger"
)

var (
	extractSource string
	extractOut    string
	extractColumn string
	extractForce  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the word list from the bird dataset",
	Long: `Reads bird names from a column of a CSV dataset,
keeps those 3 to 15 characters long without parentheses,
strips spaces, hyphens and apostrophes, and writes one per line.

An existing word list is left alone unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractSource, "source", birdpass.EnvVarOrString("CORPUS_SOURCE_PATH", "birds.csv"), "CSV dataset to read")
	extractCmd.Flags().StringVar(&extractOut, "out", birdpass.EnvVarOrString("WORD_LIST_PATH", "bird_names.txt"), "word list to write")
	extractCmd.Flags().StringVar(&extractColumn, "column", birdpass.EnvVarOrString("CORPUS_COLUMN", corpus.DefaultColumn), "header of the column holding names")
	extractCmd.Flags().BoolVar(&extractForce, "force", false, "overwrite an existing word list")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	l := newCLILogger(cmd.ErrOrStderr())

	if !extractForce {
		absent, err := corpus.NeedsExtraction(extractOut)
		if err != nil {
			return err
		}

		if !absent {
			l.Info(fmt.Sprintf("%s exists, skipping extraction", extractOut), nil)
			return nil
		}
	}

	n, err := corpus.ExtractFile(extractSource, extractOut, extractColumn)
	if err != nil {
		l.Error("extraction failed", &logger.LogContext{Error: err})
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "extracted %d words into %s\n", n, extractOut)
	return nil
}
