package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType represents the direction of a statement entry
type EntryType string

const (
	EntryDebit  EntryType = "debit"
	EntryCredit EntryType = "credit"
	// EntryAuto means no debit/credit indicator was captured and keyword
	// inference could not resolve one. Callers must apply their own policy
	// rather than assume a sign.
	EntryAuto EntryType = "auto"
)

// PaymentMethod is the closed vocabulary of payment-method tags
type PaymentMethod string

const (
	MethodPix         PaymentMethod = "pix"
	MethodTed         PaymentMethod = "ted"
	MethodDoc         PaymentMethod = "doc"
	MethodCredit      PaymentMethod = "credit"
	MethodDebit       PaymentMethod = "debit"
	MethodBoleto      PaymentMethod = "boleto"
	MethodTransfer    PaymentMethod = "transfer"
	MethodACH         PaymentMethod = "ach"
	MethodWire        PaymentMethod = "wire"
	MethodCheck       PaymentMethod = "check"
	MethodZelle       PaymentMethod = "zelle"
	MethodSepa        PaymentMethod = "sepa"
	MethodBizum       PaymentMethod = "bizum"
	MethodDirectDebit PaymentMethod = "direct_debit"
	MethodCash        PaymentMethod = "cash"
)

// RawTransaction is one regex match from a statement, fields exactly as
// they appeared in the text. Dates and amounts are locale-specific strings
// that have not been parsed yet.
type RawTransaction struct {
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        EntryType `json:"type"`
	Balance     string    `json:"balance,omitempty"`
}

// Transaction is a normalized statement entry, independent of the bank
// that produced it. Amount is signed: debits are negative.
type Transaction struct {
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"payment_method"`
	Type        EntryType       `json:"type"`
	Bank        string          `json:"bank"`
	Currency    string          `json:"currency"`

	// Raw preserves the matched strings for auditing and content hashing
	Raw RawTransaction `json:"raw"`
}
