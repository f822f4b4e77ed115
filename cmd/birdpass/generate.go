package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/corpus"
	"github.com/xy-planning-network/birdpass/passphrase"
)

var (
	generateWords string
	generateCount int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print passphrases drawn from the word list",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateWords, "words", birdpass.EnvVarOrString("WORD_LIST_PATH", "bird_names.txt"), "word list to draw from")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of passphrases")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generateCount < 1 {
		return errors.New("count must be at least 1")
	}

	c, err := corpus.Load(generateWords)
	if err != nil {
		return err
	}

	newCLILogger(cmd.ErrOrStderr()).Debug(fmt.Sprintf("loaded %d words from %s", c.Len(), generateWords), nil)

	gen := passphrase.NewGenerator(c)
	for i := 0; i < generateCount; i++ {
		pass, err := gen.Generate()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), pass)
	}

	return nil
}
