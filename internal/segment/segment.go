package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Granularity selects the delimiter used by Split.
type Granularity int

const (
	Paragraph Granularity = iota
	Sentence
)

func (g Granularity) String() string {
	switch g {
	case Paragraph:
		return "paragraph"
	case Sentence:
		return "sentence"
	}
	return "unknown"
}

// Segment is one emitted piece of the parent text.
type Segment struct {
	Text   string // Emitted text, delimiter included
	Offset int    // Byte offset within the parent, counting emitted lengths
}

var (
	// A newline followed by at least one blank (or whitespace-only) line.
	paragraphDelim = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

	// Terminal punctuation, optional closing quotes or brackets, then
	// whitespace or end of input.
	sentenceDelim = regexp.MustCompile(`[.!?]+["'”’)\]]*(?:\s+|$)`)

	terminated = regexp.MustCompile(`[.!?]+["'”’)\]]*$`)
)

func delimiter(g Granularity) *regexp.Regexp {
	if g == Sentence {
		return sentenceDelim
	}
	return paragraphDelim
}

// Split partitions text into ordered segments. Each delimiter stays attached
// to the segment it closes, so concatenating the segments reproduces text
// except for the synthetic "." that terminates an unpunctuated trailing
// fragment. Offsets are running sums of emitted lengths.
func Split(text string, g Granularity) []Segment {
	if text == "" {
		return nil
	}

	delim := delimiter(g)
	var out []Segment
	start, offset := 0, 0

	for _, loc := range delim.FindAllStringIndex(text, -1) {
		if loc[1] <= start {
			continue // zero-length match
		}
		piece := text[start:loc[1]]
		out = append(out, Segment{Text: piece, Offset: offset})
		offset += len(piece)
		start = loc[1]
	}

	if start < len(text) {
		piece := terminate(text[start:])
		out = append(out, Segment{Text: piece, Offset: offset})
	}

	return out
}

// terminate inserts a "." after the last non-space character of s when s has
// content but no terminal punctuation. Trailing whitespace is preserved.
func terminate(s string) string {
	body := strings.TrimRightFunc(s, unicode.IsSpace)
	if body == "" || terminated.MatchString(body) {
		return s
	}
	return body + "." + s[len(body):]
}

// Words splits text on runs of whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}
