package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/birdpass/ranger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve passphrases over HTTP",
	Long: `Extracts the word list if it does not exist yet, loads it,
and serves passphrases until interrupted.

Configuration is read from the environment; see the ranger package for the variables.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	rng, err := ranger.New()
	if err != nil {
		return err
	}

	return rng.Guide()
}
