// Package lexicon holds the static word and phrase tables used to flag
// adverbs, passive constructions, weak qualifiers and wordy phrases.
package lexicon

import (
	"sort"
	"strings"

	"github.com/dgallion1/clearprose/internal/segment"
)

// Phrase is a multi-word (or single-word) table entry.
type Phrase struct {
	Text        string   // Canonical lowercase text
	Words       []string // Normalized word tokens of Text
	Suggestions []string // Replacements, if the table carries any
}

// PhraseTable indexes phrases by their first word. Candidates for the same
// first word are ordered longest first so the first hit is the longest.
type PhraseTable struct {
	byFirst map[string][]Phrase
	size    int
}

// NewPhraseTable builds a table from phrase text to suggestions. A nil
// suggestion slice is allowed.
func NewPhraseTable(entries map[string][]string) *PhraseTable {
	t := &PhraseTable{byFirst: make(map[string][]Phrase)}
	for text, suggestions := range entries {
		words := NormalizeTokens(segment.Tokens(text))
		if len(words) == 0 {
			continue
		}
		p := Phrase{
			Text:        strings.Join(words, " "),
			Words:       words,
			Suggestions: suggestions,
		}
		t.byFirst[words[0]] = append(t.byFirst[words[0]], p)
		t.size++
	}
	for first, ps := range t.byFirst {
		sort.Slice(ps, func(i, j int) bool {
			if len(ps[i].Words) != len(ps[j].Words) {
				return len(ps[i].Words) > len(ps[j].Words)
			}
			return ps[i].Text < ps[j].Text
		})
		t.byFirst[first] = ps
	}
	return t
}

// Len returns the number of phrases in the table.
func (t *PhraseTable) Len() int { return t.size }

// LongestAt returns the longest phrase whose words match words[i:].
// words must already be normalized.
func (t *PhraseTable) LongestAt(words []string, i int) (Phrase, bool) {
	if i < 0 || i >= len(words) {
		return Phrase{}, false
	}
	for _, p := range t.byFirst[words[i]] {
		if i+len(p.Words) > len(words) {
			continue
		}
		if equalWords(p.Words, words[i:i+len(p.Words)]) {
			return p, true
		}
	}
	return Phrase{}, false
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Tables is the raw material for a Lexicon.
type Tables struct {
	Adverbs     []string
	Participles map[string]string // irregular participle -> suggested verb
	Weak        []string
	Wordy       map[string][]string
}

// Lexicon answers membership questions against immutable tables. It is safe
// for concurrent use.
type Lexicon struct {
	adverbs     map[string]struct{}
	participles map[string]string
	weak        *PhraseTable
	wordy       *PhraseTable
}

// New builds a Lexicon from t. Keys are normalized with Normalize.
func New(t Tables) *Lexicon {
	l := &Lexicon{
		adverbs:     make(map[string]struct{}, len(t.Adverbs)),
		participles: make(map[string]string, len(t.Participles)),
	}
	for _, a := range t.Adverbs {
		l.adverbs[Normalize(strings.TrimSpace(a))] = struct{}{}
	}
	for p, base := range t.Participles {
		l.participles[Normalize(strings.TrimSpace(p))] = base
	}

	weak := make(map[string][]string, len(t.Weak))
	for _, w := range t.Weak {
		weak[w] = nil
	}
	l.weak = NewPhraseTable(weak)
	l.wordy = NewPhraseTable(t.Wordy)
	return l
}

var defaultLexicon = New(Tables{
	Adverbs:     adverbList,
	Participles: passiveParticiples,
	Weak:        weakPhraseList,
	Wordy:       wordyPhrases,
})

// Default returns the built-in English lexicon.
func Default() *Lexicon { return defaultLexicon }

// IsAdverb reports whether the normalized word is in the adverb set.
func (l *Lexicon) IsAdverb(word string) bool {
	_, ok := l.adverbs[word]
	return ok
}

// Participle reports whether the normalized word is a table participle and
// returns the verb suggested for an active rewrite.
func (l *Lexicon) Participle(word string) (string, bool) {
	if IsBeForm(word) {
		return "", false
	}
	base, ok := l.participles[word]
	return base, ok
}

// WeakPhrases returns the qualifier table.
func (l *Lexicon) WeakPhrases() *PhraseTable { return l.weak }

// WordyPhrases returns the wordy phrase table with replacements.
func (l *Lexicon) WordyPhrases() *PhraseTable { return l.wordy }

var beForms = map[string]struct{}{
	"am": {}, "are": {}, "be": {}, "been": {}, "being": {}, "is": {}, "was": {}, "were": {},
}

// IsBeForm reports whether the normalized word is a form of "to be".
func IsBeForm(word string) bool {
	_, ok := beForms[word]
	return ok
}

// Normalize lowercases word and folds typographic apostrophes.
func Normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "’", "'")
}

// NormalizeTokens returns the normalized text of each token.
func NormalizeTokens(tokens []segment.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Normalize(t.Text)
	}
	return out
}
