// Package rules implements the non-statistical side of detection:
// script- and character-based short-circuit classification and candidate
// filtering ahead of n-gram scoring.
package rules

import (
	"strings"

	"github.com/glossa-dev/glossa/pkg/language"
)

// disambiguationEntry maps a character class to the languages it points at.
type disambiguationEntry struct {
	characters string
	languages  []language.Language
}

// disambiguationTable is consulted in insertion order; for each word the
// first entry the word shares a character with wins and stops the scan.
var disambiguationTable = []disambiguationEntry{
	{"Îî", []language.Language{language.French}},
	{"Ññ", []language.Language{language.Spanish}},
	{"Ûû", []language.Language{language.French}},
	{"Ëë", []language.Language{language.French}},
	{"ÈèÙù", []language.Language{language.French}},
	{"Êê", []language.Language{language.French}},
	{"Ôô", []language.Language{language.French}},
	{"Àà", []language.Language{language.French}},
	{"Üü", []language.Language{language.Spanish}},
	{"Çç", []language.Language{language.French}},
	{"Óó", []language.Language{language.Spanish}},
	{"ÁáÍíÚú", []language.Language{language.Spanish}},
	{"Éé", []language.Language{language.French, language.Spanish}},
}

// Engine evaluates alphabet and character rules against a configured
// language set. It is immutable after construction.
type Engine struct {
	configured map[language.Language]bool
	ordered    []language.Language
}

// NewEngine builds a rule engine restricted to the given languages.
// Unknown and duplicates are dropped; the retained set keeps catalog order.
func NewEngine(languages []language.Language) *Engine {
	configured := make(map[language.Language]bool, len(languages))
	for _, l := range languages {
		if l != language.Unknown {
			configured[l] = true
		}
	}
	var ordered []language.Language
	for _, l := range language.AllLanguages() {
		if configured[l] {
			ordered = append(ordered, l)
		}
	}
	return &Engine{configured: configured, ordered: ordered}
}

// Languages returns the configured languages in catalog order.
func (e *Engine) Languages() []language.Language {
	return e.ordered
}

// DetectByRules classifies words on script and character evidence alone.
// It returns Unknown when the evidence is absent, ambiguous, or points at
// a language outside the configured set.
func (e *Engine) DetectByRules(words []string) language.Language {
	totals := make(map[language.Language]int)

	for _, word := range words {
		wordCounts := make(map[language.Language]int)
		for _, ch := range word {
			matched := false
			for _, ua := range language.UniqueAlphabets() {
				if ua.Alphabet.MatchesRune(ch) {
					wordCounts[ua.Language]++
					matched = true
				}
			}
			if matched {
				continue
			}
			if language.AlphabetLatin.MatchesRune(ch) || language.AlphabetDevanagari.MatchesRune(ch) {
				for _, lang := range language.AllLanguages() {
					if strings.ContainsRune(lang.UniqueCharacters(), ch) {
						wordCounts[lang]++
					}
				}
			}
		}
		totals[e.wordWinner(wordCounts)]++
	}

	// Unknown is only meaningful when at least half the words produced it.
	if 2*totals[language.Unknown] < len(words) {
		delete(totals, language.Unknown)
	}

	if len(totals) == 0 {
		return language.Unknown
	}
	winner, tied := maxByCatalogOrder(totals)
	if tied {
		return language.Unknown
	}
	return winner
}

// wordWinner reduces a per-word tally to a single vote.
func (e *Engine) wordWinner(wordCounts map[language.Language]int) language.Language {
	switch len(wordCounts) {
	case 0:
		return language.Unknown
	case 1:
		for lang := range wordCounts {
			if e.configured[lang] {
				return lang
			}
		}
		return language.Unknown
	default:
		winner, tied := maxByCatalogOrder(wordCounts)
		if tied || !e.configured[winner] {
			return language.Unknown
		}
		return winner
	}
}

// maxByCatalogOrder finds the strict maximum of a tally, iterating in
// catalog order so exotic ties resolve reproducibly. tied reports whether
// the top count is shared.
func maxByCatalogOrder(counts map[language.Language]int) (winner language.Language, tied bool) {
	best := -1
	for lang := language.Unknown; int(lang) <= int(language.Ukrainian); lang++ {
		count, ok := counts[lang]
		if !ok {
			continue
		}
		switch {
		case count > best:
			best = count
			winner = lang
			tied = false
		case count == best:
			tied = true
		}
	}
	return winner, tied
}

// FilterCandidates narrows the configured set using the dominant alphabet
// of the words plus the disambiguation table. The returned sequence keeps
// catalog order.
func (e *Engine) FilterCandidates(words []string) []language.Language {
	alphabetCounts := make(map[language.Alphabet]int)
	for _, word := range words {
		for _, a := range language.AllAlphabets() {
			if a.MatchesString(word) {
				alphabetCounts[a]++
				break
			}
		}
	}
	if len(alphabetCounts) == 0 {
		return e.ordered
	}

	// Dominant alphabet; declared order breaks ties.
	var dominant language.Alphabet
	best := -1
	for _, a := range language.AllAlphabets() {
		if count, ok := alphabetCounts[a]; ok && count > best {
			best = count
			dominant = a
		}
	}

	var filtered []language.Language
	for _, lang := range e.ordered {
		for _, la := range lang.Alphabets() {
			if la == dominant {
				filtered = append(filtered, lang)
				break
			}
		}
	}

	languageCounts := make(map[language.Language]int)
	for _, word := range words {
		for _, entry := range disambiguationTable {
			if strings.ContainsAny(word, entry.characters) {
				for _, lang := range entry.languages {
					languageCounts[lang]++
				}
				break
			}
		}
	}

	half := len(words) / 2
	var strong []language.Language
	for _, lang := range language.AllLanguages() {
		if count, ok := languageCounts[lang]; ok && count >= half {
			strong = append(strong, lang)
		}
	}
	if len(strong) == 0 {
		return filtered
	}

	var intersected []language.Language
	for _, lang := range filtered {
		for _, s := range strong {
			if lang == s {
				intersected = append(intersected, lang)
				break
			}
		}
	}
	return intersected
}
