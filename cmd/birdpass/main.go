// Command birdpass serves bird-name passphrases over HTTP
// and manages the word list they are drawn from.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
