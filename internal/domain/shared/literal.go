// Package shared contains helpers used by several aggregates.
package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLiteral folds user-supplied enum literals to a comparable key:
// accents stripped, lower case, spaces and dashes turned into underscores.
// "Clôturée" and "cloturee" both become "cloturee".
func NormalizeLiteral(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(folded)
}
