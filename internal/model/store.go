package model

import (
	"fmt"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/ngram"
	"github.com/glossa-dev/glossa/pkg/language"
)

// lazyCell materializes its training model exactly once under contention.
// After the Once completes the fields are immutable; the Once gate provides
// the release/acquire boundary for readers. A failed load is sticky so every
// access reports the same diagnostic.
type lazyCell struct {
	once  sync.Once
	model *trainingModel
	err   error
}

// Store answers relative-frequency lookups over lazily loaded training
// models. The cell maps are frozen at construction, so all methods are safe
// for unbounded concurrent use.
type Store struct {
	source fs.FS
	logger *zap.Logger
	tables [ngram.MaxLength]map[language.Language]*lazyCell
}

// NewStore builds a store over source for the given languages. Models are
// not read until first use.
func NewStore(source fs.FS, languages []language.Language, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{source: source, logger: logger}
	for order := 1; order <= ngram.MaxLength; order++ {
		cells := make(map[language.Language]*lazyCell, len(languages))
		for _, lang := range languages {
			if lang == language.Unknown {
				continue
			}
			cells[lang] = &lazyCell{}
		}
		s.tables[order-1] = cells
	}
	return s
}

// RelativeFrequency returns the stored frequency of ng in the training
// model for lang at ng's order, or 0 when the n-gram is absent or the
// language is not held by the store.
//
// A model that cannot be read or decoded is a packaging bug: the lookup
// panics with a diagnostic rather than degrading silently.
func (s *Store) RelativeFrequency(lang language.Language, ng ngram.Ngram) float64 {
	order := ng.Len()
	if order < 1 || order > ngram.MaxLength {
		panic(fmt.Sprintf("model: unsupported ngram length %d", order))
	}
	cell, ok := s.tables[order-1][lang]
	if !ok {
		return 0
	}
	cell.once.Do(func() {
		cell.model, cell.err = loadTrainingModel(s.source, lang, order)
		if cell.err != nil {
			return
		}
		s.logger.Debug("language model materialized",
			zap.String("language", lang.String()),
			zap.String("order", OrderWord(order)),
			zap.Int("ngrams", len(cell.model.frequencies)))
	})
	if cell.err != nil {
		panic(fmt.Sprintf("model: %s %s model unavailable: %v", lang, OrderWord(order), cell.err))
	}
	return cell.model.relativeFrequency(string(ng))
}

// Languages returns the languages the store holds models for, in catalog
// order.
func (s *Store) Languages() []language.Language {
	var languages []language.Language
	for _, lang := range language.AllLanguages() {
		if _, ok := s.tables[0][lang]; ok {
			languages = append(languages, lang)
		}
	}
	return languages
}
