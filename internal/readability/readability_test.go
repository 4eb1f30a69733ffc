package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeLevel(t *testing.T) {
	tests := []struct {
		name                      string
		letters, words, sentences int
		want                      int
	}{
		{"no words", 10, 0, 1, 0},
		{"no sentences", 10, 5, 0, 0},
		{"clamped at zero", 9, 3, 1, 0},
		// 50/10*4.71 + 10*0.5 - 21.43 = 7.12
		{"typical", 50, 10, 1, 7},
		// 60/10*4.71 + 20/2*0.5 - 21.43 = 11.83
		{"rounds up", 60, 20, 2, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeLevel(tt.letters, tt.words, tt.sentences))
		})
	}
}

func TestClassifyNormalBoundaries(t *testing.T) {
	p := ProfileFor(Normal)
	assert.Equal(t, LevelHard, Classify(10, 20, p))
	assert.Equal(t, LevelHard, Classify(13, 20, p))
	assert.Equal(t, LevelVeryHard, Classify(14, 20, p))
	assert.Equal(t, LevelNormal, Classify(9, 20, p))
	assert.Equal(t, LevelNormal, Classify(20, 5, p))
	assert.Equal(t, LevelVeryHard, Classify(20, 14, p))
	assert.Equal(t, LevelNormal, Classify(20, 13, p))
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, Profile{8, 8, 12}, ProfileFor(Accessible))
	assert.Equal(t, Profile{14, 10, 14}, ProfileFor(Normal))
	assert.Equal(t, Profile{14, 14, 18}, ProfileFor(Technical))
	assert.Equal(t, ProfileFor(Normal), ProfileFor("bogus"))

	assert.Equal(t, LevelHard, Classify(8, 8, ProfileFor(Accessible)))
	assert.Equal(t, LevelNormal, Classify(12, 20, ProfileFor(Technical)))
}

func TestParseTarget(t *testing.T) {
	assert.Equal(t, Accessible, ParseTarget("accessible"))
	assert.Equal(t, Technical, ParseTarget(" Technical "))
	assert.Equal(t, Normal, ParseTarget("NORMAL"))
	assert.Equal(t, Normal, ParseTarget(""))
	assert.Equal(t, Normal, ParseTarget("expert"))
	assert.Len(t, Targets(), 3)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0.0, ReadingTime(0))
	assert.Equal(t, 60.0, ReadingTime(250))
	assert.InDelta(t, 2.4, ReadingTime(10), 1e-9)
}
