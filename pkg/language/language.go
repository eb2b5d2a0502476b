// Package language defines the closed catalog of detectable languages and
// the script alphabets they are written in. The catalog is static program
// data; all lookups are read-only and safe for concurrent use.
package language

import (
	"encoding/json"
	"fmt"
)

// Language identifies a natural language from the bundled catalog.
type Language int

// The catalog, in natural (alphabetical) order. Unknown is the zero value;
// it carries no model and is never a scoring candidate.
const (
	Unknown Language = iota
	Arabic
	Chinese
	English
	French
	German
	Greek
	Hebrew
	Hindi
	Italian
	Japanese
	Korean
	Portuguese
	Russian
	Spanish
	Thai
	Ukrainian
)

var languageNames = [...]string{
	Unknown:    "Unknown",
	Arabic:     "Arabic",
	Chinese:    "Chinese",
	English:    "English",
	French:     "French",
	German:     "German",
	Greek:      "Greek",
	Hebrew:     "Hebrew",
	Hindi:      "Hindi",
	Italian:    "Italian",
	Japanese:   "Japanese",
	Korean:     "Korean",
	Portuguese: "Portuguese",
	Russian:    "Russian",
	Spanish:    "Spanish",
	Thai:       "Thai",
	Ukrainian:  "Ukrainian",
}

var languageFromName = map[string]Language{}

func init() {
	for l, name := range languageNames {
		languageFromName[name] = Language(l)
	}
}

// isoCodes maps languages to their ISO 639-1 codes. The code is the key
// under which the language's n-gram models are stored.
var isoCodes = [...]string{
	Unknown:    "",
	Arabic:     "ar",
	Chinese:    "zh",
	English:    "en",
	French:     "fr",
	German:     "de",
	Greek:      "el",
	Hebrew:     "he",
	Hindi:      "hi",
	Italian:    "it",
	Japanese:   "ja",
	Korean:     "ko",
	Portuguese: "pt",
	Russian:    "ru",
	Spanish:    "es",
	Thai:       "th",
	Ukrainian:  "uk",
}

// languageAlphabets maps languages to the alphabets they are written in.
var languageAlphabets = [...][]Alphabet{
	Unknown:    nil,
	Arabic:     {AlphabetArabic},
	Chinese:    {AlphabetHan},
	English:    {AlphabetLatin},
	French:     {AlphabetLatin},
	German:     {AlphabetLatin},
	Greek:      {AlphabetGreek},
	Hebrew:     {AlphabetHebrew},
	Hindi:      {AlphabetDevanagari},
	Italian:    {AlphabetLatin},
	Japanese:   {AlphabetHiragana, AlphabetKatakana, AlphabetHan},
	Korean:     {AlphabetHangul},
	Portuguese: {AlphabetLatin},
	Russian:    {AlphabetCyrillic},
	Spanish:    {AlphabetLatin},
	Thai:       {AlphabetThai},
	Ukrainian:  {AlphabetCyrillic},
}

// uniqueCharacters maps languages to characters whose presence is a strong
// single-language signal within a shared script.
var uniqueCharacters = [...]string{
	German:     "ß",
	Portuguese: "ãõ",
	Spanish:    "¿¡",
	Ukrainian:  "ґєї",
}

// String returns the name of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// IsoCode639_1 returns the two-letter ISO 639-1 code, or "" for Unknown.
func (l Language) IsoCode639_1() string {
	if int(l) >= 0 && int(l) < len(isoCodes) {
		return isoCodes[l]
	}
	return ""
}

// Alphabets returns the alphabets the language is written in.
func (l Language) Alphabets() []Alphabet {
	if int(l) >= 0 && int(l) < len(languageAlphabets) {
		return languageAlphabets[l]
	}
	return nil
}

// UniqueCharacters returns the language's unique-character string, or "".
func (l Language) UniqueCharacters() string {
	if int(l) >= 0 && int(l) < len(uniqueCharacters) {
		return uniqueCharacters[l]
	}
	return ""
}

// MarshalJSON encodes the language as its name (e.g. "Spanish").
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a language name back into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lang, ok := languageFromName[s]
	if !ok {
		return fmt.Errorf("language: unknown language %q", s)
	}
	*l = lang
	return nil
}

// AllLanguages returns every catalog language except Unknown, in catalog
// order. The returned slice is freshly allocated.
func AllLanguages() []Language {
	languages := make([]Language, 0, len(languageNames)-1)
	for l := Arabic; int(l) < len(languageNames); l++ {
		languages = append(languages, l)
	}
	return languages
}

// FromIsoCode639_1 resolves a two-letter code to its catalog language.
func FromIsoCode639_1(code string) (Language, bool) {
	for l := Arabic; int(l) < len(isoCodes); l++ {
		if isoCodes[l] == code {
			return l, true
		}
	}
	return Unknown, false
}

// LanguagesUsing returns the catalog languages written in the given
// alphabet, in catalog order.
func LanguagesUsing(a Alphabet) []Language {
	var languages []Language
	for _, l := range AllLanguages() {
		for _, la := range l.Alphabets() {
			if la == a {
				languages = append(languages, l)
				break
			}
		}
	}
	return languages
}
