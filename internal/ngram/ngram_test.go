package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestModel(t *testing.T) {
	params := []struct {
		text     string
		n        int
		expected []Ngram
	}{
		{"abcde", 1, []Ngram{"a", "b", "c", "d", "e"}},
		{"abcde", 2, []Ngram{"ab", "bc", "cd", "de"}},
		{"abcde", 3, []Ngram{"abc", "bcd", "cde"}},
		{"abcde", 4, []Ngram{"abcd", "bcde"}},
		{"abcde", 5, []Ngram{"abcde"}},
		// Duplicates collapse; first occurrence keeps its position.
		{"abab", 2, []Ngram{"ab", "ba"}},
		{"aaaa", 1, []Ngram{"a"}},
		// Rune-based, not byte-based.
		{"héé", 2, []Ngram{"hé", "éé"}},
		{"мир", 3, []Ngram{"мир"}},
		// Too short for the order.
		{"ab", 3, nil},
		{"", 1, nil},
	}
	for _, p := range params {
		model := NewTestModel(p.text, p.n)
		assert.Equalf(t, p.n, model.Length, "NewTestModel(%q, %d)", p.text, p.n)
		assert.Equalf(t, p.expected, model.Ngrams, "NewTestModel(%q, %d)", p.text, p.n)
	}
}

func TestNewTestModelRejectsBadOrder(t *testing.T) {
	assert.Panics(t, func() { NewTestModel("abc", 0) })
	assert.Panics(t, func() { NewTestModel("abc", 6) })
}

func TestBackoffChain(t *testing.T) {
	assert.Equal(t,
		[]Ngram{"abcde", "abcd", "abc", "ab", "a"},
		Ngram("abcde").BackoffChain())
	assert.Equal(t, []Ngram{"a"}, Ngram("a").BackoffChain())
	// Truncation counts runes, not bytes.
	assert.Equal(t, []Ngram{"héо", "hé", "h"}, Ngram("héо").BackoffChain())
}

func TestTruncateLast(t *testing.T) {
	assert.Equal(t, Ngram("abc"), Ngram("abcd").TruncateLast())
	assert.Panics(t, func() { Ngram("a").TruncateLast() })
}

func TestNewRejectsInvalidNgrams(t *testing.T) {
	assert.Panics(t, func() { New("") })
	assert.Panics(t, func() { New("abcdef") })
	assert.Equal(t, Ngram("abcde"), New("abcde"))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 1, Ngram("é").Len())
	assert.Equal(t, 3, Ngram("мир").Len())
}
