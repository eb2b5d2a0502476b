// Package model materializes per-language, per-order n-gram frequency
// tables and answers relative-frequency lookups against them.
package model

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/glossa-dev/glossa/pkg/language"
)

// orderWords names the model resource for each n-gram order.
var orderWords = [...]string{"unigram", "bigram", "trigram", "quadrigram", "fivegram"}

// OrderWord returns the resource word for an order in 1..5.
func OrderWord(order int) string {
	return orderWords[order-1]
}

// trainingModel is an immutable frequency table for one (language, order)
// pair. Absent keys mean zero.
type trainingModel struct {
	frequencies map[string]float64
}

func (m *trainingModel) relativeFrequency(ng string) float64 {
	return m.frequencies[ng]
}

// modelDocument is the persisted shape of a training model: n-gram strings
// mapped to frequencies written as decimals or rational fractions "a/b".
type modelDocument struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

func resourcePath(lang language.Language, order int) string {
	return fmt.Sprintf("language-models/%s/%ss.json", lang.IsoCode639_1(), OrderWord(order))
}

// loadTrainingModel reads and decodes the persisted model for one
// (language, order) pair from source.
func loadTrainingModel(source fs.FS, lang language.Language, order int) (*trainingModel, error) {
	path := resourcePath(lang, order)
	data, err := fs.ReadFile(source, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	frequencies := make(map[string]float64, len(doc.Ngrams))
	for ng, raw := range doc.Ngrams {
		if ng == "" {
			return nil, fmt.Errorf("decode %s: empty ngram key", path)
		}
		freq, err := parseFrequency(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: ngram %q: %w", path, ng, err)
		}
		if freq <= 0 || freq > 1 {
			return nil, fmt.Errorf("decode %s: ngram %q: frequency %v outside (0, 1]", path, ng, freq)
		}
		frequencies[ng] = freq
	}
	return &trainingModel{frequencies: frequencies}, nil
}

// parseFrequency expands a frequency written as a decimal ("0.25") or a
// rational fraction ("1/4").
func parseFrequency(raw string) (float64, error) {
	if num, den, ok := strings.Cut(raw, "/"); ok {
		a, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid numerator %q", num)
		}
		b, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid denominator %q", den)
		}
		if b == 0 {
			return 0, fmt.Errorf("zero denominator in %q", raw)
		}
		return a / b, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q", raw)
	}
	return f, nil
}
