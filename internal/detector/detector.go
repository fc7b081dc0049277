// Package detector identifies which institution produced a statement by
// matching the registry's header signatures against the document text.
package detector

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/casalfin/statement-engine/internal/patterns"
)

// foldTransformer decomposes to NFD, drops combining marks and
// recomposes, so "Itaú" and "itau" fold to the same bytes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases s and strips diacritics. Falls back to plain
// lowercasing if the transform fails on malformed input.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Detect returns the first pattern in registry order with any header
// substring present in text, or nil when no institution matches. Matching
// is case- and diacritic-insensitive. A nil result is a valid outcome:
// callers fall back to generic or manual parsing.
//
// The language hint is accepted for interface stability but does not
// influence detection.
func Detect(reg *patterns.Registry, text, language string) *patterns.BankPattern {
	_ = language

	folded := fold(text)
	for _, p := range reg.All() {
		for _, header := range p.HeaderPatterns {
			if strings.Contains(folded, fold(header)) {
				return p
			}
		}
	}
	return nil
}
