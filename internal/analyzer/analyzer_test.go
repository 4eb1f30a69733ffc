package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/readability"
)

const sample = "The ball was thrown by him. I think we should expedite the process.\n\n" +
	"Short one.\n\n" +
	"Trailing fragment without punctuation"

func TestAnalyze_Structure(t *testing.T) {
	doc := Analyze(sample, doctree.Settings{}, idgen.Sequence("id"))

	assert.Equal(t, "id-1", doc.ID)
	assert.Equal(t, doctree.TypeParagraph, doc.Type)
	assert.Equal(t, sample, doc.Text)
	assert.Empty(t, doc.Issues)
	require.Len(t, doc.Children, 3)

	first := doc.Children[0]
	assert.Equal(t, "id-1/id-2", first.ID)
	require.Len(t, first.Children, 2)
	assert.Equal(t, "id-1/id-2/id-3", first.Children[0].ID)
	assert.Equal(t, doctree.TypeSentence, first.Children[0].Type)
	assert.Equal(t, "The ball was thrown by him. ", first.Children[0].Text)
	assert.Equal(t, 0, first.Children[0].OffsetInBlock)
	assert.Equal(t, len("The ball was thrown by him. "), first.Children[1].OffsetInBlock)

	last := doc.Children[2]
	assert.Equal(t, "Trailing fragment without punctuation.", last.Text)
	assert.Equal(t, len(sample)-len("Trailing fragment without punctuation"), last.OffsetInBlock)
}

func TestAnalyze_ChildrenReproduceParent(t *testing.T) {
	doc := Analyze(sample, doctree.Settings{}, idgen.Sequence("id"))

	var paras strings.Builder
	for _, p := range doc.Children {
		var sents strings.Builder
		offset := 0
		for _, s := range p.Children {
			assert.Equal(t, offset, s.OffsetInBlock)
			offset += len(s.Text)
			sents.WriteString(s.Text)
		}
		assert.Equal(t, p.Text, sents.String())
		paras.WriteString(p.Text)
	}
	assert.Equal(t, sample+".", paras.String(), "only the synthetic terminator differs")
}

func TestAnalyze_IssuesAndStats(t *testing.T) {
	doc := Analyze(sample, doctree.Settings{}, idgen.Sequence("id"))

	passive := doc.Children[0].Children[0]
	require.NotEmpty(t, passive.Issues)
	assert.Equal(t, doctree.CategoryPassiveVoice, passive.Issues[0].Category)
	assert.Equal(t, "was thrown", passive.Issues[0].Text)
	assert.Equal(t, []string{"threw"}, passive.Issues[0].Suggestions)

	weak := doc.Children[0].Children[1]
	require.NotEmpty(t, weak.Issues)
	assert.Equal(t, doctree.CategoryWeakPhrase, weak.Issues[0].Category)
	assert.Equal(t, "I think", weak.Issues[0].Text)

	st := doc.Stats
	assert.Equal(t, 1, st.Highlights.PassiveVoices)
	assert.Equal(t, 1, st.Highlights.Qualifiers)
	assert.Equal(t, 1, st.Highlights.ComplexWords)
	assert.Equal(t, 4, st.Sentences)
	assert.Equal(t, 3, st.Paragraphs)
	assert.Equal(t, 19, st.Words)
	assert.InDelta(t, float64(19)/250*60, st.ReadingTimeInSecs, 1e-9)
	assert.Equal(t, readability.GradeLevel(st.Letters, st.Words, st.Sentences), st.ReadingLevel)

	for _, p := range doc.Children {
		assert.Zero(t, p.Stats.ReadingLevel)
		assert.Empty(t, p.Stats.Readability)
		assert.Zero(t, p.Stats.Paragraphs)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	doc := Analyze("", doctree.Settings{}, idgen.Sequence("id"))
	assert.Empty(t, doc.Children)
	assert.Zero(t, doc.Stats.Words)
	assert.Zero(t, doc.Stats.ReadingLevel)
	assert.Equal(t, readability.LevelNormal, doc.Stats.Readability)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := Analyze(sample, doctree.Settings{ReadingLevelTarget: "technical"}, idgen.Sequence("id"))
	b := Analyze(sample, doctree.Settings{ReadingLevelTarget: "technical"}, idgen.Sequence("id"))
	assert.Equal(t, a, b)
}

func TestAnalyze_TargetChangesClassification(t *testing.T) {
	text := "Institutional stakeholders systematically underestimated the " +
		"implementation complexities of comprehensive infrastructural " +
		"modernization across large organizations."

	normal := Analyze(text, doctree.Settings{ReadingLevelTarget: readability.Normal}, idgen.Sequence("n"))
	technical := Analyze(text, doctree.Settings{ReadingLevelTarget: readability.Technical}, idgen.Sequence("t"))

	assert.Equal(t, normal.Stats.ReadingLevel, technical.Stats.ReadingLevel)
	assert.GreaterOrEqual(t, normal.Stats.ReadingLevel, 18)
	assert.Equal(t, readability.LevelVeryHard, normal.Stats.Readability)
	assert.Equal(t, readability.LevelVeryHard, technical.Stats.Readability)
}

func TestAnalyze_LeadingBlankLinesCountAsParagraph(t *testing.T) {
	doc := Analyze("\n\nHello world", doctree.Settings{}, idgen.Sequence("id"))
	require.Len(t, doc.Children, 2)
	assert.Equal(t, len(doc.Children), doc.Stats.Paragraphs)
	assert.Equal(t, 2, doc.Stats.Words)
}

func TestAnalyze_OffsetsAreBytes(t *testing.T) {
	doc := Analyze("Café is good. The ball was thrown by him.", doctree.Settings{}, idgen.Sequence("id"))
	require.Len(t, doc.Children, 1)
	sents := doc.Children[0].Children
	require.Len(t, sents, 2)

	assert.Equal(t, 14, sents[0].Stats.Characters, "characters count runes")
	assert.Equal(t, len("Café is good. "), sents[1].OffsetInBlock)
	assert.Equal(t, 15, sents[1].OffsetInBlock)
}

func TestAnalyze_NilGenerator(t *testing.T) {
	doc := Analyze("One. Two.", doctree.Settings{}, nil)
	require.Len(t, doc.ID, 26)
	require.Len(t, doc.Children, 1)
	assert.True(t, strings.HasPrefix(doc.Children[0].ID, doc.ID+"/"))
}
