package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xy-planning-network/birdpass/logger"
)

// A PrepareConfig locates the dataset and the word list extracted from it.
type PrepareConfig struct {
	// Column names the display name column; DefaultColumn when empty.
	Column       string
	SourcePath   string
	WordListPath string
}

// NeedsExtraction asserts whether no word list exists at path.
// Only absence triggers extraction; a stale word list is kept.
func NeedsExtraction(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrLoad, err)
	}
}

// Prepare extracts the word list when it does not exist and loads it.
//
// Any error is fatal to startup:
// extraction only runs when there is no earlier word list to fall back on.
func Prepare(cfg PrepareConfig, l logger.Logger) (*Corpus, error) {
	if cfg.Column == "" {
		cfg.Column = DefaultColumn
	}

	extract, err := NeedsExtraction(cfg.WordListPath)
	if err != nil {
		l.Error("could not check for word list", &logger.LogContext{Error: err})
		return nil, err
	}

	if extract {
		l.Info(fmt.Sprintf("extracting word list %s from %s", cfg.WordListPath, cfg.SourcePath), nil)
		n, err := ExtractFile(cfg.SourcePath, cfg.WordListPath, cfg.Column)
		if err != nil {
			l.Error("could not extract word list", &logger.LogContext{Error: err})
			return nil, err
		}

		l.Info(fmt.Sprintf("extracted %d words into %s", n, cfg.WordListPath), nil)
	}

	c, err := Load(cfg.WordListPath)
	if err != nil {
		l.Error("could not load word list", &logger.LogContext{Error: err})
		return nil, err
	}

	l.Info(fmt.Sprintf("loaded %d words into memory", c.Len()), nil)

	return c, nil
}
