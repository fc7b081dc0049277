// Package extractor applies a bank pattern's transaction regexes to
// statement text and produces raw field tuples. No parsing happens here:
// dates and amounts come out exactly as matched.
package extractor

import (
	"strings"

	"github.com/casalfin/statement-engine/internal/patterns"
	"github.com/casalfin/statement-engine/internal/types"
)

type options struct {
	dedupe bool
}

// Option modifies extraction behaviour
type Option func(*options)

// Dedupe drops tuples whose date, description and amount already appeared
// in an earlier match. By default sibling regexes that both fit a line
// each produce a tuple; that over-approximation favours recall, since no
// single regex covers every layout variant of a bank's statements.
// Callers that prefer precision opt in here.
func Dedupe() Option {
	return func(o *options) {
		o.dedupe = true
	}
}

// Extract runs every transaction regex of p globally over text and
// returns one raw tuple per match, in regex order then match order.
// An empty result is not an error: it signals the bank's statement layout
// has drifted from the registered pattern.
func Extract(text string, p *patterns.BankPattern, opts ...Option) []types.RawTransaction {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var out []types.RawTransaction
	var seen map[string]bool
	if o.dedupe {
		seen = make(map[string]bool)
	}

	for _, re := range p.TransactionRegexps() {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			raw := types.RawTransaction{
				Date:        m[1],
				Description: strings.TrimSpace(m[2]),
				Amount:      m[3],
				Type:        types.EntryAuto,
			}

			// Group 4, when present, is either a single-letter
			// debit/credit indicator or a running balance.
			if len(m) > 4 && m[4] != "" {
				switch strings.ToUpper(strings.TrimSpace(m[4])) {
				case "D":
					raw.Type = types.EntryDebit
				case "C":
					raw.Type = types.EntryCredit
				default:
					raw.Balance = m[4]
				}
			}

			if raw.Type == types.EntryAuto {
				raw.Type = inferEntryType(raw.Description)
			}

			if o.dedupe {
				key := raw.Date + "\x00" + raw.Description + "\x00" + raw.Amount
				if seen[key] {
					continue
				}
				seen[key] = true
			}

			out = append(out, raw)
		}
	}
	return out
}

// Keyword sets for inferring direction when no indicator was captured.
// Portuguese and English are covered; Spanish coverage is deliberately
// partial ("pago"/"abono" are not listed), matching the behaviour callers
// already depend on. When the language is Spanish and no indicator was
// captured, callers should supply the type themselves.
var (
	debitKeywords  = []string{"pagamento", "payment", "compra", "purchase", "débito", "debit"}
	creditKeywords = []string{"depósito", "deposit", "crédito", "credit", "recebimento", "received"}
)

// inferEntryType classifies a description by keyword. No match on either
// side leaves the tuple as EntryAuto, signalling the caller must not
// assume a sign.
func inferEntryType(description string) types.EntryType {
	lower := strings.ToLower(description)
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return types.EntryDebit
		}
	}
	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return types.EntryCredit
		}
	}
	return types.EntryAuto
}
