// Package scorer turns test-model n-grams into per-language log-probability
// sums using backoff over the training models.
package scorer

import (
	"math"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/ngram"
	"github.com/glossa-dev/glossa/pkg/language"
)

// Scorer evaluates candidate languages against a model store. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	store *model.Store
}

// New builds a scorer over store.
func New(store *model.Store) *Scorer {
	return &Scorer{store: store}
}

// ScoreLanguage sums ln(p) over the given n-grams, where p is the frequency
// of the longest prefix in each n-gram's backoff chain with non-zero
// frequency for lang. N-grams with no hit at any order contribute nothing.
func (s *Scorer) ScoreLanguage(lang language.Language, ngrams []ngram.Ngram) float64 {
	sum := 0.0
	for _, g := range ngrams {
		for _, prefix := range g.BackoffChain() {
			if freq := s.store.RelativeFrequency(lang, prefix); freq > 0 {
				sum += math.Log(freq)
				break
			}
		}
	}
	return sum
}

// LanguageProbabilities scores every candidate against the test model and
// keeps only strictly negative sums; a zero sum means no usable evidence.
func (s *Scorer) LanguageProbabilities(testModel ngram.TestModel, candidates []language.Language) map[language.Language]float64 {
	probabilities := make(map[language.Language]float64, len(candidates))
	for _, lang := range candidates {
		if score := s.ScoreLanguage(lang, testModel.Ngrams); score < 0 {
			probabilities[lang] = score
		}
	}
	return probabilities
}

// UnigramHits counts the unigrams of the test model with non-zero training
// frequency for lang. The detector uses it to normalize summed scores.
func (s *Scorer) UnigramHits(lang language.Language, testModel ngram.TestModel) int {
	hits := 0
	for _, g := range testModel.Ngrams {
		if s.store.RelativeFrequency(lang, g) > 0 {
			hits++
		}
	}
	return hits
}
