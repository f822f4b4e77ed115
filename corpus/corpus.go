package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// A Corpus is the ordered, read-only list of tokens passphrases draw from.
// Duplicates are allowed.
type Corpus struct {
	words []string
}

// New constructs a Corpus from a copy of words.
func New(words []string) *Corpus {
	c := &Corpus{words: make([]string, len(words))}
	copy(c.words, words)

	return c
}

// Load reads the word list at path into a Corpus,
// one entry per line in file order.
// Lines are kept as they are.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoad, err)
	}
	defer f.Close()

	c := new(Corpus)
	s := bufio.NewScanner(f)
	for s.Scan() {
		c.words = append(c.words, s.Text())
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoad, err)
	}

	return c, nil
}

// At returns the token at i.
func (c *Corpus) At(i int) string { return c.words[i] }

// Len returns the number of tokens.
func (c *Corpus) Len() int { return len(c.words) }

// Words returns a copy of the tokens.
func (c *Corpus) Words() []string {
	words := make([]string, len(c.words))
	copy(words, c.words)

	return words
}
