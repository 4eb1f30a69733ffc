package segment

import (
	"unicode"
	"unicode/utf8"
)

// Token is a word located inside a larger string.
// The invariant s[t.Start:t.End] == t.Text holds for the tokenized s.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens returns the word tokens of text. A word is a run of letters and
// digits; an apostrophe joins two such runs ("don't", "o’clock").
func Tokens(text string) []Token {
	tokens := make([]Token, 0, len(text)/5+1)
	start := -1

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			i += size
			continue
		}

		if start >= 0 && isApostrophe(r) {
			next, _ := utf8.DecodeRuneInString(text[i+size:])
			if isWordRune(next) {
				i += size
				continue
			}
		}

		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
		i += size
	}

	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

// CountLetters counts letters and digits in text.
func CountLetters(text string) int {
	n := 0
	for _, r := range text {
		if isWordRune(r) {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
