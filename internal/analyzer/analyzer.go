// Package analyzer builds the analyzed document tree: it splits text into
// paragraphs and sentences, runs the highlighter on every sentence and
// aggregates the stats upward.
package analyzer

import (
	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/highlight"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/issues"
	"github.com/dgallion1/clearprose/internal/lexicon"
	"github.com/dgallion1/clearprose/internal/segment"
	"github.com/dgallion1/clearprose/internal/stats"
)

// Analyzer is stateless apart from its immutable lexicon and is safe for
// concurrent use.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New returns an Analyzer over lex. A nil lex uses the built-in tables.
func New(lex *lexicon.Lexicon) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Analyzer{lex: lex}
}

var defaultAnalyzer = New(nil)

// Analyze runs the built-in analyzer. See (*Analyzer).Analyze.
func Analyze(text string, settings doctree.Settings, next idgen.Func) *doctree.Block {
	return defaultAnalyzer.Analyze(text, settings, next)
}

// Analyze returns the document block for text. It never fails: empty input
// yields a document with no children and zeroed stats. next is called once
// per block; a nil next falls back to ULIDs.
func (a *Analyzer) Analyze(text string, settings doctree.Settings, next idgen.Func) *doctree.Block {
	if next == nil {
		next = idgen.ULID()
	}
	profile := settings.Profile()
	hl := highlight.New(a.lex, profile)

	doc := newBlock(next(), doctree.TypeParagraph, text, 0)

	for _, p := range segment.Split(text, segment.Paragraph) {
		para := newBlock(idgen.Child(doc.ID, next), doctree.TypeParagraph, p.Text, p.Offset)

		for _, s := range segment.Split(p.Text, segment.Sentence) {
			r := hl.Sentence(s.Text)
			sent := newBlock(idgen.Child(para.ID, next), doctree.TypeSentence, s.Text, s.Offset)
			sent.Stats = stats.Sentence(s.Text, r)
			sent.Issues = issues.Report(s.Text, r)
			para.Children = append(para.Children, sent)
		}

		para.Stats = stats.Paragraph(para.Children)
		doc.Children = append(doc.Children, para)
	}

	doc.Stats = stats.Document(doc.Children, profile)
	return doc
}

func newBlock(id string, typ doctree.BlockType, text string, offset int) *doctree.Block {
	return &doctree.Block{
		ID:            id,
		Type:          typ,
		Text:          text,
		OffsetInBlock: offset,
		Issues:        []doctree.Issue{},
		Children:      []*doctree.Block{},
	}
}
