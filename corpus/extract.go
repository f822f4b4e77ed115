package corpus

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultColumn is the header of the display name column in the source dataset.
	DefaultColumn = "English name"

	MinNameLen = 3
	MaxNameLen = 15

	utf8BOM = "\ufeff"
)

var cleaner = strings.NewReplacer(" ", "", "-", "", "'", "")

// Accept asserts whether name can become a token:
// it must be MinNameLen to MaxNameLen runes long and not contain "(".
func Accept(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		return false
	}

	return !strings.Contains(name, "(")
}

// Clean removes every space, hyphen and apostrophe from name.
func Clean(name string) string { return cleaner.Replace(name) }

// Extract reads CSV from src and writes a token per line to dst
// for every row whose value in column passes Accept.
// Extract returns the number of tokens written.
//
// A missing column or malformed CSV returns ErrExtraction.
func Extract(src io.Reader, dst io.Writer, column string) (int, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: reading header: %s", ErrExtraction, err)
	}

	idx := columnIndex(header, column)
	if idx < 0 {
		return 0, fmt.Errorf("%w: no %q column", ErrExtraction, column)
	}

	w := bufio.NewWriter(dst)
	var count int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return count, fmt.Errorf("%w: %s", ErrExtraction, err)
		}

		if idx >= len(rec) || !Accept(rec[idx]) {
			continue
		}

		token := Clean(rec[idx])
		if token == "" {
			continue
		}

		if _, err := w.WriteString(token + "\n"); err != nil {
			return count, fmt.Errorf("%w: %s", ErrExtraction, err)
		}

		count++
	}

	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	return count, nil
}

// ExtractFile runs Extract from the CSV at srcPath into the word list at dstPath.
//
// Tokens are first written to a temporary file next to dstPath,
// which replaces dstPath only once extraction succeeds.
func ExtractFile(srcPath, dstPath, column string) (n int, err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExtraction, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dstPath), "."+filepath.Base(dstPath)+".*")
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	n, err = Extract(src, tmp, column)
	if err != nil {
		return 0, err
	}

	if err = tmp.Chmod(0o644); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	if err = os.Rename(tmp.Name(), dstPath); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	return n, nil
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}

		if h == column {
			return i
		}
	}

	return -1
}
