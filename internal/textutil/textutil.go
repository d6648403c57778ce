package textutil

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LooksBinary checks if content is not editable text: it contains NUL bytes
// or is not valid UTF-8.
func LooksBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}

// TransferCase shapes replacement after the case pattern of original:
// all-caps originals uppercase the replacement, title-case originals
// capitalize it, anything else lowercases it.
func TransferCase(original, replacement string) string {
	switch {
	case isUpper(original):
		return strings.ToUpper(replacement)
	case isTitle(original):
		return capitalize(replacement)
	default:
		return strings.ToLower(replacement)
	}
}

// isUpper reports whether s contains at least one letter and no lowercase
// letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter
}

// isTitle reports whether s starts with an uppercase letter and has no
// further uppercase letters.
func isTitle(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s[size:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// capitalize uppercases the first rune of s and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
