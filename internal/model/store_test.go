package model

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/glossa-dev/glossa/internal/ngram"
	"github.com/glossa-dev/glossa/pkg/language"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{
			Data: []byte(`{"language":"ENGLISH","ngrams":{"a":"1/2","b":"0.25"}}`),
		},
		"language-models/en/bigrams.json": &fstest.MapFile{
			Data: []byte(`{"language":"ENGLISH","ngrams":{"ab":"2/5"}}`),
		},
	}
}

func TestParseFrequency(t *testing.T) {
	params := []struct {
		raw      string
		expected float64
	}{
		{"1/2", 0.5},
		{"3/100", 0.03},
		{"0.25", 0.25},
		{"1", 1.0},
	}
	for _, p := range params {
		freq, err := parseFrequency(p.raw)
		require.NoErrorf(t, err, "parseFrequency(%q)", p.raw)
		assert.InDeltaf(t, p.expected, freq, 1e-12, "parseFrequency(%q)", p.raw)
	}

	for _, raw := range []string{"", "a/b", "1/", "/2", "1/0", "abc"} {
		_, err := parseFrequency(raw)
		assert.Errorf(t, err, "parseFrequency(%q)", raw)
	}
}

func TestRelativeFrequency(t *testing.T) {
	store := NewStore(fixtureFS(), []language.Language{language.English}, zaptest.NewLogger(t))

	assert.InDelta(t, 0.5, store.RelativeFrequency(language.English, ngram.Ngram("a")), 1e-12)
	assert.InDelta(t, 0.25, store.RelativeFrequency(language.English, ngram.Ngram("b")), 1e-12)
	assert.InDelta(t, 0.4, store.RelativeFrequency(language.English, ngram.Ngram("ab")), 1e-12)

	// Missing keys are zero, not errors.
	assert.Zero(t, store.RelativeFrequency(language.English, ngram.Ngram("z")))
	// Languages outside the store are zero as well.
	assert.Zero(t, store.RelativeFrequency(language.French, ngram.Ngram("a")))
}

func TestRelativeFrequencyPanicsOnMissingResource(t *testing.T) {
	store := NewStore(fixtureFS(), []language.Language{language.English}, zaptest.NewLogger(t))
	// No trigram document exists for English in the fixture.
	assert.Panics(t, func() {
		store.RelativeFrequency(language.English, ngram.Ngram("abc"))
	})
}

func TestRelativeFrequencyPanicsOnCorruptResource(t *testing.T) {
	corrupt := fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{Data: []byte(`{"ngrams"`)},
	}
	store := NewStore(corrupt, []language.Language{language.English}, zaptest.NewLogger(t))
	assert.Panics(t, func() {
		store.RelativeFrequency(language.English, ngram.Ngram("a"))
	})
}

func TestLoadTrainingModelRejectsBadFrequencies(t *testing.T) {
	bad := fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{
			Data: []byte(`{"language":"ENGLISH","ngrams":{"a":"3/2"}}`),
		},
	}
	_, err := loadTrainingModel(bad, language.English, 1)
	assert.Error(t, err)

	empty := fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{
			Data: []byte(`{"language":"ENGLISH","ngrams":{"":"1/2"}}`),
		},
	}
	_, err = loadTrainingModel(empty, language.English, 1)
	assert.Error(t, err)
}

func TestConcurrentFirstUse(t *testing.T) {
	store := NewStore(fixtureFS(), []language.Language{language.English}, zaptest.NewLogger(t))

	const goroutines = 64
	results := make([]float64, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.RelativeFrequency(language.English, ngram.Ngram("a"))
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.InDelta(t, 0.5, r, 1e-12)
	}
}

func TestBundledModelsComplete(t *testing.T) {
	source := BundledModels()
	for _, lang := range language.AllLanguages() {
		for order := 1; order <= ngram.MaxLength; order++ {
			m, err := loadTrainingModel(source, lang, order)
			require.NoErrorf(t, err, "bundled %s %s model", lang, OrderWord(order))
			assert.NotEmptyf(t, m.frequencies, "bundled %s %s model", lang, OrderWord(order))
		}
	}
}

func TestStoreLanguages(t *testing.T) {
	store := NewStore(fixtureFS(), []language.Language{language.French, language.English}, zaptest.NewLogger(t))
	assert.Equal(t, []language.Language{language.English, language.French}, store.Languages())
}
