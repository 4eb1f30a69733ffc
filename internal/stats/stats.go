// Package stats builds block statistics bottom-up: sentences from highlighter
// output, paragraphs from their sentences and the document from its
// paragraphs.
package stats

import (
	"unicode/utf8"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/highlight"
	"github.com/dgallion1/clearprose/internal/readability"
)

// Sentence returns the stats of one sentence. A sentence without words does
// not count as a sentence.
func Sentence(text string, r highlight.Result) doctree.Stats {
	s := doctree.Stats{
		Characters: utf8.RuneCountInString(text),
		Letters:    r.Letters,
		Words:      r.Words,
		Highlights: r.Counts,
	}
	if r.Words > 0 {
		s.Sentences = 1
	}
	return s
}

// Sum returns the field-wise sum of the children's stats.
func Sum(children []*doctree.Block) doctree.Stats {
	var s doctree.Stats
	for _, c := range children {
		s = s.Add(c.Stats)
	}
	return s
}

// Paragraph returns the stats of a paragraph.
func Paragraph(sentences []*doctree.Block) doctree.Stats {
	return Sum(sentences)
}

// Document sums the paragraphs and fills in the document-only fields:
// reading level, readability bucket, reading time and paragraph count.
// Every segmented paragraph counts, including delimiter-only ones.
func Document(paragraphs []*doctree.Block, profile readability.Profile) doctree.Stats {
	s := Sum(paragraphs)
	s.Paragraphs = len(paragraphs)
	s.ReadingLevel = readability.GradeLevel(s.Letters, s.Words, s.Sentences)
	s.Readability = readability.Classify(s.ReadingLevel, s.Words, profile)
	s.ReadingTimeInSecs = readability.ReadingTime(s.Words)
	return s
}
