// Package readability implements the grade-level formula and the difficulty
// buckets derived from it.
package readability

import (
	"math"
	"strings"
)

// Target is a reading-level audience.
type Target string

const (
	Accessible Target = "ACCESSIBLE"
	Normal     Target = "NORMAL"
	Technical  Target = "TECHNICAL"
)

// Level is the qualitative difficulty bucket.
type Level string

const (
	LevelNormal   Level = "normal"
	LevelHard     Level = "hard"
	LevelVeryHard Level = "veryHard"
)

// Profile holds the thresholds used by Classify.
type Profile struct {
	TooFewWordCount          int `json:"tooFewWordCount" yaml:"tooFewWordCount"`
	HardReadabilityLevel     int `json:"hardReadabilityLevel" yaml:"hardReadabilityLevel"`
	VeryHardReadabilityLevel int `json:"veryHardReadabilityLevel" yaml:"veryHardReadabilityLevel"`
}

var profiles = map[Target]Profile{
	Accessible: {TooFewWordCount: 8, HardReadabilityLevel: 8, VeryHardReadabilityLevel: 12},
	Normal:     {TooFewWordCount: 14, HardReadabilityLevel: 10, VeryHardReadabilityLevel: 14},
	Technical:  {TooFewWordCount: 14, HardReadabilityLevel: 14, VeryHardReadabilityLevel: 18},
}

// ParseTarget maps s to a Target, ignoring case and surrounding space.
// Anything unrecognized yields Normal.
func ParseTarget(s string) Target {
	t := Target(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := profiles[t]; ok {
		return t
	}
	return Normal
}

// Targets lists the recognized targets.
func Targets() []Target {
	return []Target{Accessible, Normal, Technical}
}

// ProfileFor returns the thresholds for t, falling back to Normal.
func ProfileFor(t Target) Profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return profiles[Normal]
}

// GradeLevel approximates the US grade level with the Automated Readability
// Index: round(4.71*letters/words + 0.5*words/sentences - 21.43), clamped to
// zero. Empty input scores zero.
func GradeLevel(letters, words, sentences int) int {
	if words <= 0 || sentences <= 0 {
		return 0
	}
	score := float64(letters)/float64(words)*4.71 +
		float64(words)/float64(sentences)*0.5 -
		21.43
	level := int(math.Round(score))
	if level < 0 {
		return 0
	}
	return level
}

// Classify buckets a grade level. Texts shorter than the profile's word
// floor are always normal.
func Classify(level, words int, p Profile) Level {
	switch {
	case words < p.TooFewWordCount:
		return LevelNormal
	case level >= p.VeryHardReadabilityLevel:
		return LevelVeryHard
	case level >= p.HardReadabilityLevel:
		return LevelHard
	default:
		return LevelNormal
	}
}

// ReadingTime estimates reading time in seconds at 250 words per minute.
func ReadingTime(words int) float64 {
	if words <= 0 {
		return 0
	}
	return float64(words) / 250 * 60
}
