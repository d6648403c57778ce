// Package classify buckets words ahead of the interactive pass.
package classify

import "unabbreviator/internal/dict"

// Category places a word into one of the buckets that drive the pass.
type Category int

const (
	// Ignored words were marked never-expand and pass through silently.
	Ignored Category = iota
	// Known words have at least one expansion in the abbreviation store.
	Known
	// Dictionary words are ordinary words of the language.
	Dictionary
	// Unknown words are candidates for a brand-new expansion.
	Unknown
)

// String returns the bucket name for logs.
func (c Category) String() string {
	switch c {
	case Ignored:
		return "ignored"
	case Known:
		return "known"
	case Dictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// NeedsPrompt reports whether words in this category stop the pass for a
// decision.
func (c Category) NeedsPrompt() bool {
	return c == Known || c == Unknown
}

// Store is the view of the abbreviation store classification consults.
type Store interface {
	Lookup(word string) (dict.Entry, bool)
	IsIgnored(word string) bool
}

// Oracle reports whether a word counts as an ordinary word of the language.
type Oracle func(word string) bool

// Word buckets a single word. Ignore marks win over everything, then known
// abbreviations, then ordinary dictionary words. Store matching is exact and
// case-sensitive; the oracle applies its own case folding.
func Word(text string, store Store, inDictionary Oracle) Category {
	switch {
	case store.IsIgnored(text):
		return Ignored
	case knownAbbreviation(store, text):
		return Known
	case inDictionary != nil && inDictionary(text):
		return Dictionary
	default:
		return Unknown
	}
}

func knownAbbreviation(store Store, text string) bool {
	_, ok := store.Lookup(text)
	return ok
}
