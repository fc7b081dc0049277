package patterns

import (
	"fmt"
	"regexp"
)

// Registry maintains the ordered list of known bank patterns. Ordering is
// part of the contract: detection returns the first pattern whose header
// matches, so entries with overlapping header substrings must be listed
// most-specific-first.
type Registry struct {
	banks []*BankPattern
}

// New builds a registry from the given patterns, compiling each
// transaction regex. It fails if any ID repeats, any pattern has no
// transaction regexes, or a regex defines fewer than 3 capture groups
// (date, description, amount).
func New(banks ...*BankPattern) (*Registry, error) {
	seen := make(map[string]bool, len(banks))
	for _, b := range banks {
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate bank pattern id %q", b.ID)
		}
		seen[b.ID] = true

		if len(b.TransactionPatterns) == 0 {
			return nil, fmt.Errorf("bank pattern %q has no transaction patterns", b.ID)
		}

		b.compiled = make([]*regexp.Regexp, 0, len(b.TransactionPatterns))
		for _, src := range b.TransactionPatterns {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("bank pattern %q: invalid transaction pattern %q: %w", b.ID, src, err)
			}
			if re.NumSubexp() < 3 {
				return nil, fmt.Errorf("bank pattern %q: transaction pattern %q has %d capture groups, need at least 3", b.ID, src, re.NumSubexp())
			}
			b.compiled = append(b.compiled, re)
		}
	}
	return &Registry{banks: banks}, nil
}

// Default returns the built-in registry: Brazil, then the United States,
// then Spain. The built-in tables are validated by tests, so a failure
// here is a programming error.
func Default() *Registry {
	all := make([]*BankPattern, 0, len(brazilBanks)+len(usBanks)+len(spainBanks))
	all = append(all, brazilBanks...)
	all = append(all, usBanks...)
	all = append(all, spainBanks...)

	r, err := New(all...)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns every registered pattern in registry order. The slice is
// shared; callers must not mutate it.
func (r *Registry) All() []*BankPattern {
	return r.banks
}

// ByCountry returns the patterns whose country code matches exactly.
// Unknown codes yield an empty slice, not an error.
func (r *Registry) ByCountry(code string) []*BankPattern {
	var out []*BankPattern
	for _, b := range r.banks {
		if b.Country == code {
			out = append(out, b)
		}
	}
	return out
}

// ByID returns the pattern with the given slug
func (r *Registry) ByID(id string) (*BankPattern, bool) {
	for _, b := range r.banks {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}
