// Package issues turns highlighter output into the issue records attached to
// sentence blocks.
package issues

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/highlight"
	"github.com/dgallion1/clearprose/internal/readability"
)

var categoryForKind = map[highlight.Kind]doctree.Category{
	highlight.Adverb:  doctree.CategoryAdverb,
	highlight.Passive: doctree.CategoryPassiveVoice,
	highlight.Weak:    doctree.CategoryWeakPhrase,
	highlight.Wordy:   doctree.CategoryWordyPhrase,
}

// Report lists the issues of one sentence: one per span plus, for a hard or
// very hard sentence, one covering the sentence text without surrounding
// whitespace. Issues are ordered by start offset, then by category rank.
func Report(text string, r highlight.Result) []doctree.Issue {
	out := make([]doctree.Issue, 0, len(r.Spans)+1)

	for _, s := range r.Spans {
		cat, ok := categoryForKind[s.Kind]
		if !ok {
			continue
		}
		out = append(out, doctree.Issue{
			Category:    cat,
			Start:       s.Start,
			End:         s.End,
			Text:        s.Text,
			Suggestions: s.Suggestions,
		})
	}

	var sentenceCat doctree.Category
	switch r.Difficulty {
	case readability.LevelHard:
		sentenceCat = doctree.CategoryHardSentence
	case readability.LevelVeryHard:
		sentenceCat = doctree.CategoryVeryHardSentence
	}
	if sentenceCat != "" {
		start, end := trimmedBounds(text)
		if start < end {
			out = append(out, doctree.Issue{
				Category: sentenceCat,
				Start:    start,
				End:      end,
				Text:     text[start:end],
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Category.Rank() < out[j].Category.Rank()
	})
	return out
}

func trimmedBounds(text string) (int, int) {
	left := strings.TrimLeftFunc(text, unicode.IsSpace)
	start := len(text) - len(left)
	end := start + len(strings.TrimRightFunc(left, unicode.IsSpace))
	return start, end
}
