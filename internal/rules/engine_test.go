package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glossa-dev/glossa/pkg/language"
)

func allEngine() *Engine {
	return NewEngine(language.AllLanguages())
}

func TestDetectByRulesScriptShortCircuit(t *testing.T) {
	params := []struct {
		words    []string
		expected language.Language
	}{
		{[]string{"مرحبا", "بالعالم"}, language.Arabic},
		{[]string{"ελληνικά"}, language.Greek},
		{[]string{"한국어입니다"}, language.Korean},
		{[]string{"עברית"}, language.Hebrew},
		{[]string{"ภาษาไทย"}, language.Thai},
		{[]string{"हिंदी"}, language.Hindi},
		{[]string{"ひらがな"}, language.Japanese},
	}
	for _, p := range params {
		assert.Equalf(t, p.expected, allEngine().DetectByRules(p.words), "words %v", p.words)
	}
}

func TestDetectByRulesUniqueCharacters(t *testing.T) {
	engine := allEngine()
	assert.Equal(t, language.German, engine.DetectByRules([]string{"straße"}))
	assert.Equal(t, language.Portuguese, engine.DetectByRules([]string{"coração"}))
	// Unique characters are only consulted for Latin and Devanagari input,
	// so Cyrillic-only evidence stays inconclusive here.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"ґанок"}))
}

func TestDetectByRulesUnknownCases(t *testing.T) {
	engine := allEngine()

	// Plain Latin words carry no unique evidence.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"hello", "world"}))
	// Cyrillic is shared between Russian and Ukrainian.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"привет", "мир"}))
	// Han is shared between Chinese and Japanese.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"中文"}))
	// Tied unique characters within one word.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"ßã"}))
}

func TestDetectByRulesRespectsConfiguredSet(t *testing.T) {
	engine := NewEngine([]language.Language{language.English, language.French})
	// Greek evidence points outside the configured set.
	assert.Equal(t, language.Unknown, engine.DetectByRules([]string{"ελληνικά"}))
}

func TestDetectByRulesMajorityWins(t *testing.T) {
	engine := allEngine()
	// Two Greek words against one evidence-free word: Unknown holds only
	// one of three votes and is discarded.
	assert.Equal(t, language.Greek,
		engine.DetectByRules([]string{"ελληνικά", "γλώσσα", "the"}))
	// One Greek word against one evidence-free word: Unknown holds half.
	assert.Equal(t, language.Unknown,
		engine.DetectByRules([]string{"ελληνικά", "the"}))
}

func TestFilterCandidatesByAlphabet(t *testing.T) {
	engine := allEngine()

	assert.Equal(t,
		[]language.Language{language.Russian, language.Ukrainian},
		engine.FilterCandidates([]string{"привет", "мир"}))

	assert.Equal(t,
		[]language.Language{
			language.English, language.French, language.German,
			language.Italian, language.Portuguese, language.Spanish,
		},
		engine.FilterCandidates([]string{"hello", "world"}))
}

func TestFilterCandidatesNoAlphabet(t *testing.T) {
	engine := NewEngine([]language.Language{language.English, language.Russian})
	// A mixed-script word matches no alphabet entirely.
	assert.Equal(t,
		[]language.Language{language.English, language.Russian},
		engine.FilterCandidates([]string{"aπ"}))
}

func TestFilterCandidatesDisambiguation(t *testing.T) {
	engine := allEngine()

	// ñ is Spanish-only in the disambiguation table.
	assert.Equal(t,
		[]language.Language{language.Spanish},
		engine.FilterCandidates([]string{"señor"}))

	// é maps to both French and Spanish.
	assert.Equal(t,
		[]language.Language{language.French, language.Spanish},
		engine.FilterCandidates([]string{"études"}))

	// è hits the ÈèÙù entry before the Éé entry: French only.
	assert.Equal(t,
		[]language.Language{language.French},
		engine.FilterCandidates([]string{"très"}))
}

func TestFilterCandidatesDisambiguationNeedsMajority(t *testing.T) {
	engine := allEngine()
	// One accented word among four: 1 < 4/2, so the alphabet filter stands.
	assert.Equal(t,
		[]language.Language{
			language.English, language.French, language.German,
			language.Italian, language.Portuguese, language.Spanish,
		},
		engine.FilterCandidates([]string{"señor", "plain", "words", "here"}))
}

func TestLanguagesKeepsCatalogOrder(t *testing.T) {
	engine := NewEngine([]language.Language{language.Spanish, language.English, language.Unknown, language.Spanish})
	assert.Equal(t, []language.Language{language.English, language.Spanish}, engine.Languages())
}
