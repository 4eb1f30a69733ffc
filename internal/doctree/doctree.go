package doctree

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dgallion1/clearprose/internal/readability"
)

// BlockType distinguishes paragraph-level blocks from sentences.
// The document root is typed as a paragraph.
type BlockType string

const (
	TypeParagraph BlockType = "paragraph"
	TypeSentence  BlockType = "sentence"
)

// Block is a node in the analyzed tree: Document -> Paragraphs -> Sentences.
// OffsetInBlock and Issue offsets are UTF-8 byte offsets, while
// Stats.Characters counts runes, so the two differ on non-ASCII text.
type Block struct {
	ID            string    `json:"id" yaml:"id"`
	Type          BlockType `json:"type" yaml:"type"`
	Text          string    `json:"text" yaml:"text"`                   // Covered text, may end in a synthetic "."
	OffsetInBlock int       `json:"offsetInBlock" yaml:"offsetInBlock"` // Byte offset inside the parent's text
	Stats         Stats     `json:"stats" yaml:"stats"`
	Issues        []Issue   `json:"issues" yaml:"issues"` // Sentences only
	Children      []*Block  `json:"children" yaml:"children"`
}

// Sentences returns every sentence below b in document order.
func (b *Block) Sentences() []*Block {
	if b.Type == TypeSentence {
		return []*Block{b}
	}
	var out []*Block
	for _, c := range b.Children {
		out = append(out, c.Sentences()...)
	}
	return out
}

// AllIssues returns the issues of every sentence below b in document order.
func (b *Block) AllIssues() []Issue {
	var out []Issue
	for _, s := range b.Sentences() {
		out = append(out, s.Issues...)
	}
	return out
}

// Highlights counts flagged constructs.
type Highlights struct {
	Adverbs           int `json:"adverbs" yaml:"adverbs"`
	ComplexWords      int `json:"complexWords" yaml:"complexWords"`
	GrammarIssues     int `json:"grammarIssues" yaml:"grammarIssues"`
	HardSentences     int `json:"hardSentences" yaml:"hardSentences"`
	PassiveVoices     int `json:"passiveVoices" yaml:"passiveVoices"`
	Qualifiers        int `json:"qualifiers" yaml:"qualifiers"`
	VeryHardSentences int `json:"veryHardSentences" yaml:"veryHardSentences"`
}

// Add returns the field-wise sum of h and o.
func (h Highlights) Add(o Highlights) Highlights {
	return Highlights{
		Adverbs:           h.Adverbs + o.Adverbs,
		ComplexWords:      h.ComplexWords + o.ComplexWords,
		GrammarIssues:     h.GrammarIssues + o.GrammarIssues,
		HardSentences:     h.HardSentences + o.HardSentences,
		PassiveVoices:     h.PassiveVoices + o.PassiveVoices,
		Qualifiers:        h.Qualifiers + o.Qualifiers,
		VeryHardSentences: h.VeryHardSentences + o.VeryHardSentences,
	}
}

// Total returns the number of flagged constructs.
func (h Highlights) Total() int {
	return h.Adverbs + h.ComplexWords + h.GrammarIssues + h.HardSentences +
		h.PassiveVoices + h.Qualifiers + h.VeryHardSentences
}

// Stats are the counts attached to every block. ReadingLevel, Readability,
// ReadingTimeInSecs and Paragraphs are only set on the document.
type Stats struct {
	Characters        int               `json:"characters" yaml:"characters"`
	Letters           int               `json:"letters" yaml:"letters"`
	Words             int               `json:"words" yaml:"words"`
	Sentences         int               `json:"sentences" yaml:"sentences"`
	Paragraphs        int               `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Highlights        Highlights        `json:"highlights" yaml:"highlights"`
	ReadingLevel      int               `json:"readingLevel" yaml:"readingLevel"`
	Readability       readability.Level `json:"readability,omitempty" yaml:"readability,omitempty"`
	ReadingTimeInSecs float64           `json:"readingTimeInSecs,omitempty" yaml:"readingTimeInSecs,omitempty"`
}

// Add returns the field-wise sum of the counting fields of s and o.
// Document-only fields are left zero.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Characters: s.Characters + o.Characters,
		Letters:    s.Letters + o.Letters,
		Words:      s.Words + o.Words,
		Sentences:  s.Sentences + o.Sentences,
		Highlights: s.Highlights.Add(o.Highlights),
	}
}

// Category names the kind of an Issue.
type Category string

const (
	CategoryAdverb           Category = "adverb"
	CategoryPassiveVoice     Category = "passive-voice"
	CategoryWeakPhrase       Category = "weak-phrase"
	CategoryWordyPhrase      Category = "wordy-phrase"
	CategoryHardSentence     Category = "hard-sentence"
	CategoryVeryHardSentence Category = "very-hard-sentence"
)

var categoryOrder = map[Category]int{
	CategoryAdverb:           0,
	CategoryPassiveVoice:     1,
	CategoryWeakPhrase:       2,
	CategoryWordyPhrase:      3,
	CategoryHardSentence:     4,
	CategoryVeryHardSentence: 5,
}

// Rank orders categories for reporting. Unknown categories sort last.
func (c Category) Rank() int {
	if r, ok := categoryOrder[c]; ok {
		return r
	}
	return len(categoryOrder)
}

// Categories lists every category in reporting order.
func Categories() []Category {
	return []Category{
		CategoryAdverb,
		CategoryPassiveVoice,
		CategoryWeakPhrase,
		CategoryWordyPhrase,
		CategoryHardSentence,
		CategoryVeryHardSentence,
	}
}

// Issue is a flagged span inside a sentence.
type Issue struct {
	Category    Category `json:"category" yaml:"category"`
	Start       int      `json:"start" yaml:"start"` // Byte offset within the sentence text
	End         int      `json:"end" yaml:"end"`
	Text        string   `json:"text" yaml:"text"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Settings controls how an analysis is classified.
type Settings struct {
	ReadingLevelTarget readability.Target `json:"readingLevelTarget,omitempty" yaml:"readingLevelTarget,omitempty"`
}

// Target returns the parsed reading-level target, defaulting to NORMAL.
func (s Settings) Target() readability.Target {
	return readability.ParseTarget(string(s.ReadingLevelTarget))
}

// Profile returns the classification thresholds for the target.
func (s Settings) Profile() readability.Profile {
	return readability.ProfileFor(s.Target())
}

// Document is prose extracted from a source file, ready for analysis.
type Document struct {
	Title      string   // Document title (from metadata or filename)
	Paragraphs []string // Prose paragraphs in reading order
}

// Text joins the paragraphs with blank lines so the analyzer sees one
// paragraph per entry. The result is NFC-normalized so composed and
// decomposed accents count the same.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return norm.NFC.String(strings.Join(parts, "\n\n"))
}
