// Package ngram extracts character n-grams from cleaned input text and
// produces the lower-order backoff chains the scorer walks.
package ngram

import (
	"fmt"
	"unicode/utf8"
)

// MaxLength is the highest n-gram order carried by the language models.
const MaxLength = 5

// Ngram is an immutable sequence of 1..MaxLength runes.
type Ngram string

// New builds an Ngram from s. Empty or over-long values indicate a
// programmer error and panic.
func New(s string) Ngram {
	length := utf8.RuneCountInString(s)
	if length == 0 {
		panic("ngram: empty ngram must not be created")
	}
	if length > MaxLength {
		panic(fmt.Sprintf("ngram: length %d exceeds maximum of %d", length, MaxLength))
	}
	return Ngram(s)
}

// Len returns the order of the n-gram in runes.
func (n Ngram) Len() int {
	return utf8.RuneCountInString(string(n))
}

// TruncateLast removes the trailing rune, producing the next lower-order
// n-gram. Truncating a unigram panics.
func (n Ngram) TruncateLast() Ngram {
	runes := []rune(string(n))
	if len(runes) <= 1 {
		panic("ngram: cannot truncate a unigram")
	}
	return Ngram(runes[:len(runes)-1])
}

// BackoffChain returns the n-gram followed by its prefixes in strictly
// decreasing order, down to length 1.
func (n Ngram) BackoffChain() []Ngram {
	runes := []rune(string(n))
	if len(runes) == 0 {
		panic("ngram: empty ngram must not be queried")
	}
	chain := make([]Ngram, 0, len(runes))
	for i := len(runes); i >= 1; i-- {
		chain = append(chain, Ngram(runes[:i]))
	}
	return chain
}

// TestModel holds the distinct n-grams of a single order found in an input.
type TestModel struct {
	Length int
	Ngrams []Ngram
}

// NewTestModel extracts the set of distinct contiguous length-n substrings
// of text, rune-based. Insertion order is preserved so downstream summation
// stays deterministic. Inputs shorter than n yield an empty model.
func NewTestModel(text string, n int) TestModel {
	if n < 1 || n > MaxLength {
		panic(fmt.Sprintf("ngram: unsupported ngram length %d", n))
	}
	runes := []rune(text)
	model := TestModel{Length: n}
	if len(runes) < n {
		return model
	}
	seen := make(map[Ngram]struct{}, len(runes))
	for i := 0; i+n <= len(runes); i++ {
		g := Ngram(runes[i : i+n])
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		model.Ngrams = append(model.Ngrams, g)
	}
	return model
}
