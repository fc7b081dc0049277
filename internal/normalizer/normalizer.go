// Package normalizer converts raw extracted fields into typed values:
// calendar dates, decimal amounts and payment-method tags. Every function
// is fail-soft: malformed input yields a defined default (zero amount,
// nil date, "cash" tag), never an error or panic, so batch imports can
// proceed past unparseable lines and report them separately.
package normalizer

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/casalfin/statement-engine/internal/patterns"
	"github.com/casalfin/statement-engine/internal/types"
)

// Normalizer holds the logger used for parse-failure warnings
type Normalizer struct {
	logger *log.Logger
}

// New creates a Normalizer
func New(logger *log.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// currencyGlyphs are stripped from amount strings before parsing
var currencyGlyphs = []string{"R$", "€", "$", "£", "¥", " "}

// Amount parses a locale-formatted amount string. BRL and EUR amounts are
// European-formatted (1.234,56); everything else is US-formatted
// (1,234.56). A string that still fails to parse becomes decimal.Zero —
// callers that need to tell "zero transaction" from "parse failure" must
// pre-validate the raw string themselves.
func (n *Normalizer) Amount(raw, currency string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	for _, glyph := range currencyGlyphs {
		s = strings.ReplaceAll(s, glyph, "")
	}
	s = strings.TrimSpace(s)

	switch currency {
	case "BRL", "EUR":
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		n.logger.Debug("unparseable amount coerced to zero", "raw", raw, "currency", currency)
		return decimal.Zero
	}
	return d
}

// Date parses a raw date string against the pattern's accepted layouts in
// order, returning the first that fits the string's shape. Returns nil on
// failure, with a logged warning; callers must treat a nil date as
// "exclude or flag for review", never as "today".
func (n *Normalizer) Date(raw string, p *patterns.BankPattern) *time.Time {
	s := strings.TrimSpace(raw)
	for _, layout := range p.DateFormats {
		if t, ok := parseDate(s, layout); ok {
			return &t
		}
	}
	n.logger.Warn("failed to parse date", "raw", raw, "bank", p.ID, "formats", p.DateFormats)
	return nil
}

// parseDate handles one layout token. Two-digit years are windowed:
// values above 50 map to the 1900s, the rest to the 2000s.
func parseDate(s, layout string) (time.Time, bool) {
	var sep string
	switch layout {
	case "DD/MM/YYYY", "MM/DD/YYYY", "DD/MM/YY", "MM/DD/YY":
		sep = "/"
	case "DD-MM-YYYY":
		sep = "-"
	default:
		return time.Time{}, false
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	yearDigits := 4
	if strings.HasSuffix(layout, "YY") && !strings.HasSuffix(layout, "YYYY") {
		yearDigits = 2
	}
	if len(parts[2]) != yearDigits {
		return time.Time{}, false
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if yearDigits == 2 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}

	day, month := first, second
	if strings.HasPrefix(layout, "MM") {
		day, month = second, first
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// methodRule maps a description keyword to a payment-method tag
type methodRule struct {
	keyword string
	method  types.PaymentMethod
}

// methodRules holds the ordered, country-specific keyword lists. First
// match wins; this is an ordered check, not longest-match.
var methodRules = map[string][]methodRule{
	"BR": {
		{"pix", types.MethodPix},
		{"ted", types.MethodTed},
		{"doc", types.MethodDoc},
		{"cartão", types.MethodCredit},
		{"débito", types.MethodDebit},
		{"boleto", types.MethodBoleto},
		{"transferência", types.MethodTransfer},
	},
	"US": {
		{"ach", types.MethodACH},
		{"wire", types.MethodWire},
		{"check", types.MethodCheck},
		{"zelle", types.MethodZelle},
		{"card", types.MethodCredit},
		{"transfer", types.MethodTransfer},
	},
	"ES": {
		{"sepa", types.MethodSepa},
		{"bizum", types.MethodBizum},
		{"tarjeta", types.MethodCredit},
		{"transferencia", types.MethodTransfer},
		{"domiciliación", types.MethodDirectDebit},
	},
}

// PaymentMethod classifies a description against the country's keyword
// list. Unknown countries and descriptions with no matching keyword fall
// back to "cash".
func (n *Normalizer) PaymentMethod(description, country string) types.PaymentMethod {
	lower := strings.ToLower(description)
	for _, rule := range methodRules[country] {
		if strings.Contains(lower, rule.keyword) {
			return rule.method
		}
	}
	return types.MethodCash
}
