package language

import (
	"fmt"
	"unicode"
)

// Alphabet is a script class backed by a Unicode range table. Alphabets
// form a closed enumeration; dispatch happens through lookup tables rather
// than interfaces.
type Alphabet int

// Declared order is alphabetical and is load-bearing: rule evaluation and
// tie-breaking iterate alphabets in this order.
const (
	AlphabetArabic Alphabet = iota
	AlphabetCyrillic
	AlphabetDevanagari
	AlphabetGreek
	AlphabetHan
	AlphabetHangul
	AlphabetHebrew
	AlphabetHiragana
	AlphabetKatakana
	AlphabetLatin
	AlphabetThai
)

var alphabetNames = [...]string{
	AlphabetArabic:     "Arabic",
	AlphabetCyrillic:   "Cyrillic",
	AlphabetDevanagari: "Devanagari",
	AlphabetGreek:      "Greek",
	AlphabetHan:        "Han",
	AlphabetHangul:     "Hangul",
	AlphabetHebrew:     "Hebrew",
	AlphabetHiragana:   "Hiragana",
	AlphabetKatakana:   "Katakana",
	AlphabetLatin:      "Latin",
	AlphabetThai:       "Thai",
}

var alphabetTables = [...]*unicode.RangeTable{
	AlphabetArabic:     unicode.Arabic,
	AlphabetCyrillic:   unicode.Cyrillic,
	AlphabetDevanagari: unicode.Devanagari,
	AlphabetGreek:      unicode.Greek,
	AlphabetHan:        unicode.Han,
	AlphabetHangul:     unicode.Hangul,
	AlphabetHebrew:     unicode.Hebrew,
	AlphabetHiragana:   unicode.Hiragana,
	AlphabetKatakana:   unicode.Katakana,
	AlphabetLatin:      unicode.Latin,
	AlphabetThai:       unicode.Thai,
}

// String returns the script name of the alphabet.
func (a Alphabet) String() string {
	if int(a) >= 0 && int(a) < len(alphabetNames) {
		return alphabetNames[a]
	}
	return fmt.Sprintf("Alphabet(%d)", int(a))
}

// MatchesRune reports whether r belongs to the alphabet's script.
func (a Alphabet) MatchesRune(r rune) bool {
	return unicode.Is(alphabetTables[a], r)
}

// MatchesString reports whether every rune of s belongs to the alphabet's
// script. The empty string matches no alphabet.
func (a Alphabet) MatchesString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(alphabetTables[a], r) {
			return false
		}
	}
	return true
}

// AllAlphabets returns every alphabet in declared order.
func AllAlphabets() []Alphabet {
	alphabets := make([]Alphabet, len(alphabetNames))
	for i := range alphabets {
		alphabets[i] = Alphabet(i)
	}
	return alphabets
}

// UniqueAlphabet binds an alphabet to the single catalog language using it.
type UniqueAlphabet struct {
	Alphabet Alphabet
	Language Language
}

// uniqueAlphabets lists the alphabets used by exactly one catalog language,
// in declared alphabet order so rule evaluation stays reproducible.
var uniqueAlphabets []UniqueAlphabet

func init() {
	for _, a := range AllAlphabets() {
		if users := LanguagesUsing(a); len(users) == 1 {
			uniqueAlphabets = append(uniqueAlphabets, UniqueAlphabet{Alphabet: a, Language: users[0]})
		}
	}
}

// UniqueAlphabets returns the alphabets that map to exactly one language,
// in declared alphabet order.
func UniqueAlphabets() []UniqueAlphabet {
	return uniqueAlphabets
}
