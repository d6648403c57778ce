// Package apply materializes word decisions into final text.
package apply

import (
	"strings"

	"unabbreviator/internal/token"
)

// Render produces the output text for doc given its token sequence and the
// replacement text for a subset of tokens, keyed by token index. Every other
// token's span is copied verbatim from doc, so offsets never shift no matter
// how replacement lengths differ.
func Render(doc string, tokens []token.Token, edits map[int]string) string {
	if len(edits) == 0 {
		return doc
	}

	var b strings.Builder
	for i, tok := range tokens {
		if text, ok := edits[i]; ok {
			b.WriteString(text)
			continue
		}
		b.WriteString(doc[tok.Start:tok.End])
	}
	return b.String()
}
