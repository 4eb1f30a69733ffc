// Package scoring rates an analyzed document on a few style dimensions.
// Positive values are good; each dimension is small and unbounded below.
package scoring

import (
	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/readability"
)

// Scores holds one value per dimension and their sum.
type Scores struct {
	Readability        float64 `json:"readability" yaml:"readability"`
	Conciseness        float64 `json:"conciseness" yaml:"conciseness"`
	ActiveVoice        float64 `json:"activeVoice" yaml:"activeVoice"`
	ParagraphStructure float64 `json:"paragraphStructure" yaml:"paragraphStructure"`
	Total              float64 `json:"total" yaml:"total"`
}

// Score rates doc, the root block returned by the analyzer. A document
// without words scores zero everywhere.
func Score(doc *doctree.Block) Scores {
	if doc == nil || doc.Stats.Words == 0 {
		return Scores{}
	}
	s := Scores{
		Readability:        Readability(doc.Stats),
		Conciseness:        Conciseness(doc.Stats),
		ActiveVoice:        ActiveVoice(doc.Stats),
		ParagraphStructure: ParagraphStructure(doc),
	}
	s.Total = s.Readability + s.Conciseness + s.ActiveVoice + s.ParagraphStructure
	return s
}

// Readability favours grade levels 6 through 10 and penalizes very hard text.
func Readability(st doctree.Stats) float64 {
	var r float64
	switch {
	case st.ReadingLevel >= 6 && st.ReadingLevel <= 10:
		r += 0.5
	case st.ReadingLevel > 12:
		r -= 0.3
	}
	if st.Readability == readability.LevelVeryHard {
		r -= 0.4
	}
	return r
}

// Conciseness favours an average of 15 to 20 words per sentence.
func Conciseness(st doctree.Stats) float64 {
	perSentence := float64(st.Words) / float64(max(1, st.Sentences))
	switch {
	case perSentence >= 15 && perSentence <= 20:
		return 0.3
	case perSentence > 20 && perSentence < 25:
		return -0.3
	case perSentence > 25:
		return -0.6
	}
	return 0
}

// ActiveVoice rewards the absence of passive constructions.
func ActiveVoice(st doctree.Stats) float64 {
	n := st.Highlights.PassiveVoices
	if n == 0 {
		return 0.5
	}
	return -0.1 * float64(n)
}

// ParagraphStructure favours a three-sentence opening paragraph and three to
// five sentences in later ones. Paragraphs without words are ignored. The
// result is capped at 0.5.
func ParagraphStructure(doc *doctree.Block) float64 {
	var counts []int
	for _, p := range doc.Children {
		if p.Stats.Words > 0 {
			counts = append(counts, p.Stats.Sentences)
		}
	}
	if len(counts) == 0 {
		return 0
	}

	var r float64
	switch counts[0] {
	case 1:
		r += 0.1
	case 2, 4:
		r += 0.3
	case 3:
		r += 0.5
	default:
		r -= 0.25
	}

	for _, n := range counts[1:] {
		switch {
		case n < 3:
			r -= 0.1
		case n <= 5:
			r += 0.3
		case n <= 7:
			r += 0.1
		default:
			r -= 0.3
		}
	}
	return min(0.5, r)
}
