package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/highlight"
	"github.com/dgallion1/clearprose/internal/lexicon"
	"github.com/dgallion1/clearprose/internal/readability"
)

func TestReportFromSpans(t *testing.T) {
	text := "I think we should expedite the process."
	h := highlight.New(lexicon.Default(), readability.ProfileFor(readability.Normal))
	got := Report(text, h.Sentence(text))

	require.Len(t, got, 3)
	assert.Equal(t, doctree.CategoryWeakPhrase, got[0].Category)
	assert.Equal(t, "I think", got[0].Text)
	// "expedite" is flagged by both the adverb and the wordy table.
	assert.Equal(t, doctree.CategoryAdverb, got[1].Category)
	assert.Equal(t, doctree.CategoryWordyPhrase, got[2].Category)
	assert.Equal(t, []string{"hurry"}, got[2].Suggestions)
	for _, is := range got {
		assert.Equal(t, text[is.Start:is.End], is.Text)
	}
}

func TestReportOrdering(t *testing.T) {
	text := "  Was eaten quickly.  "
	r := highlight.Result{
		Spans: []highlight.Span{
			{Kind: highlight.Passive, Start: 2, End: 11, Text: "Was eaten", Suggestions: []string{"ate"}},
			{Kind: highlight.Adverb, Start: 2, End: 5, Text: "Was"},
		},
		Words:      3,
		Difficulty: readability.LevelVeryHard,
	}
	got := Report(text, r)

	require.Len(t, got, 3)
	assert.Equal(t, doctree.CategoryAdverb, got[0].Category)
	assert.Equal(t, doctree.CategoryPassiveVoice, got[1].Category)
	assert.Equal(t, []string{"ate"}, got[1].Suggestions)

	sentence := got[2]
	assert.Equal(t, doctree.CategoryVeryHardSentence, sentence.Category)
	assert.Equal(t, 2, sentence.Start)
	assert.Equal(t, len(text)-2, sentence.End)
	assert.Equal(t, "Was eaten quickly.", sentence.Text)
}

func TestReportHardSentence(t *testing.T) {
	got := Report("Long one.", highlight.Result{Words: 2, Difficulty: readability.LevelHard})
	require.Len(t, got, 1)
	assert.Equal(t, doctree.CategoryHardSentence, got[0].Category)
	assert.Empty(t, got[0].Suggestions)
}

func TestReportNothing(t *testing.T) {
	got := Report("Fine.", highlight.Result{Words: 1, Difficulty: readability.LevelNormal})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
