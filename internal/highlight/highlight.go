// Package highlight scans a single sentence for adverbs, passive voice,
// weak qualifiers and wordy phrases, and grades the sentence's difficulty.
package highlight

import (
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/lexicon"
	"github.com/dgallion1/clearprose/internal/readability"
	"github.com/dgallion1/clearprose/internal/segment"
)

// Kind identifies the table a span came from.
type Kind int

const (
	Adverb Kind = iota
	Passive
	Weak
	Wordy
)

func (k Kind) String() string {
	switch k {
	case Adverb:
		return "adverb"
	case Passive:
		return "passive"
	case Weak:
		return "weak"
	case Wordy:
		return "wordy"
	}
	return "unknown"
}

// Span is a flagged range of the sentence. text[Start:End] == Text.
type Span struct {
	Kind        Kind
	Start       int
	End         int
	Text        string
	Suggestions []string
}

// Result is the outcome of scanning one sentence.
type Result struct {
	Spans      []Span // Ordered by Start, then Kind
	Counts     doctree.Highlights
	Letters    int
	Words      int
	Level      int               // Grade level of the sentence on its own
	Difficulty readability.Level // Level bucketed with the document profile
}

// Highlighter is safe for concurrent use.
type Highlighter struct {
	lex     *lexicon.Lexicon
	profile readability.Profile
}

// New returns a Highlighter that classifies sentences with profile.
func New(lex *lexicon.Lexicon, profile readability.Profile) *Highlighter {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Highlighter{lex: lex, profile: profile}
}

// Sentence scans text, which is expected to be one sentence.
func (h *Highlighter) Sentence(text string) Result {
	tokens := segment.Tokens(text)
	words := lexicon.NormalizeTokens(tokens)

	r := Result{
		Letters:    segment.CountLetters(text),
		Words:      len(tokens),
		Difficulty: readability.LevelNormal,
	}

	var spans []Span
	spans = append(spans, h.adverbs(text, tokens, words)...)
	spans = append(spans, h.passives(text, tokens, words)...)
	spans = append(spans, phrases(h.lex.WeakPhrases(), Weak, text, tokens, words)...)
	spans = append(spans, phrases(h.lex.WordyPhrases(), Wordy, text, tokens, words)...)

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].Kind < spans[j].Kind
	})
	r.Spans = spans

	for _, s := range spans {
		switch s.Kind {
		case Adverb:
			r.Counts.Adverbs++
		case Passive:
			r.Counts.PassiveVoices++
		case Weak:
			r.Counts.Qualifiers++
		case Wordy:
			r.Counts.ComplexWords++
		}
	}

	if r.Words > 0 {
		r.Level = readability.GradeLevel(r.Letters, r.Words, 1)
		r.Difficulty = readability.Classify(r.Level, r.Words, h.profile)
		switch r.Difficulty {
		case readability.LevelHard:
			r.Counts.HardSentences = 1
		case readability.LevelVeryHard:
			r.Counts.VeryHardSentences = 1
		}
	}

	return r
}

func (h *Highlighter) adverbs(text string, tokens []segment.Token, words []string) []Span {
	var spans []Span
	for i, w := range words {
		if h.lex.IsAdverb(w) {
			spans = append(spans, span(Adverb, text, tokens[i].Start, tokens[i].End, nil))
		}
	}
	return spans
}

// passives pairs a "to be" form with a participle at most one word later.
func (h *Highlighter) passives(text string, tokens []segment.Token, words []string) []Span {
	var spans []Span
	for i := 0; i < len(words); i++ {
		if !lexicon.IsBeForm(words[i]) {
			continue
		}
		for j := i + 1; j <= i+2 && j < len(words); j++ {
			base, ok := h.lex.Participle(words[j])
			if !ok {
				continue
			}
			spans = append(spans, span(Passive, text, tokens[i].Start, tokens[j].End, []string{base}))
			i = j
			break
		}
	}
	return spans
}

// phrases finds table entries inside runs of words separated only by
// whitespace. The longest entry at a position wins and the scan resumes
// after it.
func phrases(table *lexicon.PhraseTable, kind Kind, text string, tokens []segment.Token, words []string) []Span {
	var spans []Span
	for _, run := range runs(text, tokens) {
		rw := words[run[0]:run[1]]
		for i := 0; i < len(rw); {
			p, ok := table.LongestAt(rw, i)
			if !ok {
				i++
				continue
			}
			first, last := run[0]+i, run[0]+i+len(p.Words)-1
			spans = append(spans, span(kind, text, tokens[first].Start, tokens[last].End, p.Suggestions))
			i += len(p.Words)
		}
	}
	return spans
}

// runs groups token indexes into half-open ranges whose neighbours are
// separated by whitespace only.
func runs(text string, tokens []segment.Token) [][2]int {
	if len(tokens) == 0 {
		return nil
	}
	var out [][2]int
	start := 0
	for k := 1; k < len(tokens); k++ {
		gap := text[tokens[k-1].End:tokens[k].Start]
		if strings.TrimFunc(gap, unicode.IsSpace) != "" {
			out = append(out, [2]int{start, k})
			start = k
		}
	}
	return append(out, [2]int{start, len(tokens)})
}

func span(kind Kind, text string, start, end int, suggestions []string) Span {
	return Span{
		Kind:        kind,
		Start:       start,
		End:         end,
		Text:        text[start:end],
		Suggestions: slices.Clone(suggestions),
	}
}
