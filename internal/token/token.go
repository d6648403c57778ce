package token

import (
	"unicode"
	"unicode/utf8"
)

// Kind distinguishes word tokens from the separator runs between them.
type Kind int

const (
	// Word is a run of letters, optionally joined by interior apostrophes
	// or hyphens (contractions like "don't", compounds like "well-known").
	Word Kind = iota
	// Separator is any run of non-word characters: whitespace, punctuation,
	// digits.
	Separator
)

// Token is a contiguous span of the original document text.
type Token struct {
	// Text is the exact source text of the span.
	Text string
	// Start is the byte offset of the span in the original text, inclusive.
	Start int
	// End is the byte offset one past the span, exclusive.
	End int
	// Kind tags the span as a word or a separator.
	Kind Kind
}

// Tokenize splits text into an ordered sequence of word and separator tokens.
// Every byte of the input belongs to exactly one token, so concatenating the
// token texts in order reproduces the input exactly.
func Tokenize(text string) []Token {
	var tokens []Token
	sepStart := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			i += size
			continue
		}

		if i > sepStart {
			tokens = append(tokens, Token{
				Text:  text[sepStart:i],
				Start: sepStart,
				End:   i,
				Kind:  Separator,
			})
		}

		end := scanWord(text, i)
		tokens = append(tokens, Token{
			Text:  text[i:end],
			Start: i,
			End:   end,
			Kind:  Word,
		})
		i = end
		sepStart = end
	}

	if sepStart < len(text) {
		tokens = append(tokens, Token{
			Text:  text[sepStart:],
			Start: sepStart,
			End:   len(text),
			Kind:  Separator,
		})
	}

	return tokens
}

// scanWord returns the end offset of the word starting at start. A joiner
// stays inside the word only when a letter follows it, so trailing
// apostrophes and dashes fall into the next separator.
func scanWord(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) {
			i += size
			continue
		}
		if !isJoiner(r) {
			break
		}
		next, nextSize := utf8.DecodeRuneInString(text[i+size:])
		if nextSize == 0 || !unicode.IsLetter(next) {
			break
		}
		i += size
	}
	return i
}

// isJoiner reports whether r may join two letter runs into one word.
// Straight and typographic apostrophes both count.
func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
