package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	lex := Default()

	assert.True(t, lex.IsAdverb("actually"))
	assert.False(t, lex.IsAdverb("Actually"), "lookups expect normalized words")
	assert.False(t, lex.IsAdverb("table"))

	assert.Equal(t, len(weakPhraseList), lex.WeakPhrases().Len())
	assert.Equal(t, len(wordyPhrases), lex.WordyPhrases().Len())
}

func TestParticiple(t *testing.T) {
	lex := Default()

	tests := []struct {
		word string
		base string
		ok   bool
	}{
		{"thrown", "threw", true},
		{"written", "wrote", true},
		{"been", "", false},
		{"finished", "", false},
		{"talented", "", false},
		{"hundred", "", false},
		{"table", "", false},
	}
	for _, tt := range tests {
		base, ok := lex.Participle(tt.word)
		assert.Equal(t, tt.ok, ok, tt.word)
		assert.Equal(t, tt.base, base, tt.word)
	}
}

func TestPhraseTableLongestAt(t *testing.T) {
	table := NewPhraseTable(map[string][]string{
		"in order":    nil,
		"in order to": {"to"},
		"order":       nil,
	})

	words := []string{"run", "in", "order", "to", "win"}

	p, ok := table.LongestAt(words, 1)
	require.True(t, ok)
	assert.Equal(t, "in order to", p.Text)
	assert.Equal(t, []string{"to"}, p.Suggestions)

	p, ok = table.LongestAt(words, 2)
	require.True(t, ok)
	assert.Equal(t, "order", p.Text)

	_, ok = table.LongestAt(words, 0)
	assert.False(t, ok)

	_, ok = table.LongestAt(words, 99)
	assert.False(t, ok)

	// A phrase running past the end of input does not match.
	p, ok = table.LongestAt([]string{"in", "order"}, 0)
	require.True(t, ok)
	assert.Equal(t, "in order", p.Text)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "don't", Normalize("Don’t"))
	assert.Equal(t, "i", Normalize("I"))
}

func TestNewNormalizesKeys(t *testing.T) {
	lex := New(Tables{
		Adverbs:     []string{" Swiftly "},
		Participles: map[string]string{"Sung": "sang"},
		Weak:        []string{"I Don’t Know"},
	})
	assert.True(t, lex.IsAdverb("swiftly"))

	base, ok := lex.Participle("sung")
	require.True(t, ok)
	assert.Equal(t, "sang", base)

	p, ok := lex.WeakPhrases().LongestAt([]string{"i", "don't", "know"}, 0)
	require.True(t, ok)
	assert.Equal(t, "i don't know", p.Text)
}
