// Package detector identifies the natural language of text snippets. It
// combines alphabet and character rules with statistical n-gram scoring
// over per-language training models and reports a ranked confidence
// distribution.
//
// A Detector is immutable after construction and safe for unbounded
// concurrent use; training models are materialized on first use per
// (language, order) pair and retained for the detector's lifetime.
package detector

import (
	"hash/fnv"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/ngram"
	"github.com/glossa-dev/glossa/internal/rules"
	"github.com/glossa-dev/glossa/internal/scorer"
	"github.com/glossa-dev/glossa/pkg/language"
)

// ConfidenceValue pairs a language with its relative confidence. The
// best-scoring language carries 1.0; the others fall toward 0.0. Values are
// relative to the input only, not calibrated probabilities.
type ConfidenceValue struct {
	Language language.Language `json:"language"`
	Value    float64           `json:"value"`
}

// Detector orchestrates cleaning, rule evaluation, scoring, and ranking.
type Detector struct {
	languages               []language.Language
	minimumRelativeDistance float64
	store                   *model.Store
	rules                   *rules.Engine
	scorer                  *scorer.Scorer
	logger                  *zap.Logger
}

// Languages returns the languages the detector may report, in catalog order.
func (d *Detector) Languages() []language.Language {
	out := make([]language.Language, len(d.languages))
	copy(out, d.languages)
	return out
}

// MinimumRelativeDistance returns the configured decision margin.
func (d *Detector) MinimumRelativeDistance() float64 {
	return d.minimumRelativeDistance
}

// Equal reports whether two detectors are configured identically, by
// (languages, minimumRelativeDistance).
func (d *Detector) Equal(other *Detector) bool {
	if other == nil || d.minimumRelativeDistance != other.minimumRelativeDistance {
		return false
	}
	if len(d.languages) != len(other.languages) {
		return false
	}
	for i, l := range d.languages {
		if other.languages[i] != l {
			return false
		}
	}
	return true
}

// Hash returns a hash over the detector's configuration, consistent with
// Equal.
func (d *Detector) Hash() uint64 {
	h := fnv.New64a()
	for _, l := range d.languages {
		h.Write([]byte{byte(l)})
	}
	bits := math.Float64bits(d.minimumRelativeDistance)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum64()
}

// Detect returns the most likely language of text, or Unknown when the
// input is insufficient, the top candidates tie, or the winning margin is
// below the configured minimum relative distance.
func (d *Detector) Detect(text string) language.Language {
	values := d.ConfidenceValues(text)
	if len(values) == 0 {
		return language.Unknown
	}
	if len(values) == 1 {
		return values[0].Language
	}
	top, second := values[0], values[1]
	if top.Value == second.Value {
		return language.Unknown
	}
	if top.Value-second.Value >= d.minimumRelativeDistance {
		return top.Language
	}
	return language.Unknown
}

// ConfidenceValues returns the candidate languages of text ranked by
// descending relative confidence; equal values keep catalog order. The
// result is empty when the cleaned input carries no letters.
func (d *Detector) ConfidenceValues(text string) []ConfidenceValue {
	start := time.Now()

	cleaned := cleanText(text)
	if cleaned == "" || !containsLetter(cleaned) {
		return nil
	}
	words := strings.Split(cleaned, " ")

	if lang := d.rules.DetectByRules(words); lang != language.Unknown {
		d.logger.Debug("rule short-circuit",
			zap.String("language", lang.String()),
			zap.Duration("elapsed", time.Since(start)))
		return []ConfidenceValue{{Language: lang, Value: 1.0}}
	}

	candidates := d.rules.FilterCandidates(words)
	runeLength := utf8.RuneCountInString(cleaned)

	sums := make(map[language.Language]float64, len(candidates))
	unigramHits := make(map[language.Language]int, len(candidates))

	for n := 1; n <= ngram.MaxLength && n <= runeLength; n++ {
		testModel := ngram.NewTestModel(cleaned, n)
		if len(testModel.Ngrams) == 0 {
			continue
		}
		if n == 1 {
			for _, lang := range candidates {
				if hits := d.scorer.UnigramHits(lang, testModel); hits > 0 {
					unigramHits[lang] = hits
				}
			}
		}
		probabilities := d.scorer.LanguageProbabilities(testModel, candidates)
		if len(probabilities) == 0 {
			continue
		}
		remaining := make([]language.Language, 0, len(probabilities))
		for _, lang := range candidates {
			if score, ok := probabilities[lang]; ok {
				sums[lang] += score
				remaining = append(remaining, lang)
			}
		}
		candidates = remaining
	}

	type scored struct {
		lang  language.Language
		score float64
	}
	var survivors []scored
	for _, lang := range d.languages {
		score, ok := sums[lang]
		if !ok || score == 0 {
			continue
		}
		if hits, ok := unigramHits[lang]; ok {
			score /= float64(hits)
		}
		if score == 0 {
			continue
		}
		survivors = append(survivors, scored{lang, score})
	}
	if len(survivors) == 0 {
		return nil
	}

	// Scores are negative log sums; the maximum is the one closest to zero.
	maxScore := survivors[0].score
	for _, s := range survivors[1:] {
		if s.score > maxScore {
			maxScore = s.score
		}
	}

	values := make([]ConfidenceValue, 0, len(survivors))
	for _, s := range survivors {
		values = append(values, ConfidenceValue{Language: s.lang, Value: maxScore / s.score})
	}
	// Insertion order is catalog order, so a stable sort keeps the specified
	// tie-break.
	stableSortByValueDesc(values)

	d.logger.Debug("confidence values computed",
		zap.Int("candidates", len(values)),
		zap.Duration("elapsed", time.Since(start)))
	return values
}

func stableSortByValueDesc(values []ConfidenceValue) {
	// Insertion sort keeps equal elements in place; the slice is small.
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j].Value > values[j-1].Value; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}
