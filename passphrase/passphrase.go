package passphrase

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

const (
	// Parts is the number of words in a passphrase.
	Parts = 4

	// Separator joins the parts of a passphrase.
	Separator = "-"

	// Digits is the number of distinct suffixes a word can take.
	Digits = 10
)

var ErrInsufficientCorpus = errors.New("insufficient corpus")

// Words is the read-only view of a corpus a passphrase draws from.
type Words interface {
	At(i int) string
	Len() int
}

// A Source draws random integers in [0,n).
// [*math/rand/v2.Rand] implements Source.
type Source interface {
	IntN(n int) int
}

// NewSource constructs a ChaCha8 backed Source seeded from [crypto/rand].
func NewSource() Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])

	return rand.New(rand.NewChaCha8(seed))
}

// Generate assembles a passphrase from Parts distinct positions of words.
//
// If words holds fewer than Parts entries, ErrInsufficientCorpus returns.
func Generate(words Words, src Source) (string, error) {
	n := words.Len()
	if n < Parts {
		return "", fmt.Errorf("%w: need %d words, have %d", ErrInsufficientCorpus, Parts, n)
	}

	parts := make([]string, 0, Parts)
	for _, i := range Sample(n, Parts, src) {
		parts = append(parts, words.At(i)+strconv.Itoa(src.IntN(Digits)))
	}

	return strings.Join(parts, Separator), nil
}

// Sample draws k distinct integers from [0,n) using exactly k draws from src.
// Every k-subset is equally likely and so is every ordering of it.
// If k is negative or greater than n, Sample returns nil.
//
// Sample implements Floyd's permutation algorithm:
// a fresh draw is prepended, a repeat draw puts the current upper bound right after it.
func Sample(n, k int, src Source) []int {
	if k < 0 || k > n {
		return nil
	}

	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := src.IntN(j + 1)
		if pos := slices.Index(out, t); pos >= 0 {
			out = slices.Insert(out, pos+1, j)
			continue
		}

		out = slices.Insert(out, 0, t)
	}

	return out
}
