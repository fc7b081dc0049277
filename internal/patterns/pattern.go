// Package patterns holds the static catalog of bank statement signatures:
// per-institution header substrings, date conventions and transaction
// extraction regexes. Adding support for a new bank is a data-only change
// to one of the country tables; the detector, extractor and normalizer
// consume patterns through the Registry and never need to change.
package patterns

import "regexp"

// BankPattern describes how one institution's statement exports look.
// Transaction regexes are kept as source strings in the country tables and
// compiled once when the registry is built, so the catalog itself stays
// plain serializable data.
type BankPattern struct {
	// ID is a stable slug, e.g. "itau_br"
	ID string
	// Name is the display name of the institution
	Name string
	// Country is the ISO 3166-1 alpha-2 code
	Country string
	// Currency is the ISO 4217 code, used to pick amount conventions
	Currency string

	// HeaderPatterns are lowercase substrings that identify this
	// institution anywhere in a statement's text. Matching is
	// case-insensitive and diacritic-insensitive.
	HeaderPatterns []string

	// DateFormats are accepted date layouts in order of preference,
	// e.g. "DD/MM/YYYY". The first satisfiable format wins.
	DateFormats []string

	// AmountPatterns document the expected amount shapes. They are not
	// executed during extraction; they exist as a validation aid.
	AmountPatterns []string

	// DescriptionPatterns are keyword hints used for payment-method
	// classification downstream.
	DescriptionPatterns []string

	// BalancePatterns are keyword hints for locating running-balance
	// lines. Extraction does not consume them yet.
	BalancePatterns []string

	// TransactionPatterns are regex sources with 3 or 4 capture groups:
	// date, description, amount, optional debit/credit indicator.
	TransactionPatterns []string

	// ColumnHeaders maps a language code (pt, en, es) to the column
	// header words expected in that language, for future header-based
	// column mapping.
	ColumnHeaders map[string][]string

	compiled []*regexp.Regexp
}

// TransactionRegexps returns the compiled transaction patterns. The slice
// is shared; callers must not mutate it.
func (p *BankPattern) TransactionRegexps() []*regexp.Regexp {
	return p.compiled
}
