package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/birdpass"
	"github.com/xy-planning-network/birdpass/logger"
)

var rootCmd = &cobra.Command{
	Use:   "birdpass",
	Short: "Serve bird-name passphrases",
	Long: `birdpass assembles passphrases from four distinct bird names,
each followed by a digit, e.g. Swan7-Heron0-Robin7-Crane9.

Run without a subcommand, birdpass serves passphrases over HTTP.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// newCLILogger writes human-readable logs for one-off commands.
func newCLILogger(w io.Writer) logger.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:       birdpass.EnvVarOrLogLevel("LOG_LEVEL", slog.LevelInfo),
		TimeFormat:  time.Kitchen,
		ReplaceAttr: logger.ColorizeLevel,
	})

	return logger.New(slog.New(h.WithAttrs([]slog.Attr{{Key: birdpass.LogKindKey, Value: birdpass.CLILogKind}})))
}
