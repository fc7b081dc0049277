// Package engine ties the four statement-parsing stages together:
// detection, extraction and field normalization over extracted document
// text. The engine is stateless beyond the immutable registry and safe
// for concurrent use.
package engine

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/casalfin/statement-engine/internal/detector"
	"github.com/casalfin/statement-engine/internal/extractor"
	"github.com/casalfin/statement-engine/internal/normalizer"
	"github.com/casalfin/statement-engine/internal/patterns"
	"github.com/casalfin/statement-engine/internal/types"
)

// DefaultMaxInputBytes bounds the text fed to the regex pass. Statement
// exports are rarely above a few hundred kilobytes; anything larger is
// truncated to keep pathological backtracking off the table.
const DefaultMaxInputBytes = 4 << 20

// Config controls engine behaviour
type Config struct {
	// Dedupe drops duplicate tuples produced by sibling regexes.
	// Off by default: the over-approximation favours recall.
	Dedupe bool
	// MaxInputBytes overrides the input-size guard. Zero means
	// DefaultMaxInputBytes.
	MaxInputBytes int
}

// Result is the outcome of parsing one statement. A nil Bank means no
// institution was recognized; that is a valid terminal outcome, not an
// error, and the caller should fall back to manual mapping.
type Result struct {
	Bank         *patterns.BankPattern
	Raw          []types.RawTransaction
	Transactions []types.Transaction

	// Failure counts let batch imports report unparseable lines
	// separately instead of aborting the statement.
	DateFailures   int
	AmountFailures int
	Unresolved     int
}

// Engine parses statement text into normalized transactions
type Engine struct {
	registry *patterns.Registry
	norm     *normalizer.Normalizer
	logger   *log.Logger
	config   Config
}

// New creates an Engine around an immutable registry
func New(registry *patterns.Registry, logger *log.Logger, config Config) *Engine {
	return &Engine{
		registry: registry,
		norm:     normalizer.New(logger),
		logger:   logger,
		config:   config,
	}
}

// Registry returns the registry the engine was built with
func (e *Engine) Registry() *patterns.Registry {
	return e.registry
}

// Parse runs detection, extraction and normalization over statement text.
// The language hint (pt, en, es) is passed through to detection. The only
// error returned is context cancellation; every parse-level failure
// degrades to a defined default and is counted in the Result.
func (e *Engine) Parse(ctx context.Context, text, language string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text = e.truncate(text)

	bank := detector.Detect(e.registry, text, language)
	if bank == nil {
		e.logger.Info("no bank pattern matched", "language", language)
		return Result{}, nil
	}
	e.logger.Debug("detected bank", "bank", bank.ID, "country", bank.Country)

	return e.ParseWith(ctx, text, bank)
}

// ParseWith extracts and normalizes against a known bank pattern,
// skipping detection. Callers use this when the institution was chosen
// explicitly.
func (e *Engine) ParseWith(ctx context.Context, text string, bank *patterns.BankPattern) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text = e.truncate(text)

	var opts []extractor.Option
	if e.config.Dedupe {
		opts = append(opts, extractor.Dedupe())
	}
	raw := extractor.Extract(text, bank, opts...)

	result := e.FromRaw(raw, bank)
	e.logger.Info("statement parsed",
		"bank", bank.ID,
		"transactions", len(result.Transactions),
		"date_failures", result.DateFailures,
		"amount_failures", result.AmountFailures,
		"unresolved", result.Unresolved)

	return result, nil
}

// truncate enforces the input-size guard around the regex pass
func (e *Engine) truncate(text string) string {
	maxBytes := e.config.MaxInputBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	if len(text) > maxBytes {
		e.logger.Warn("statement text truncated", "bytes", len(text), "max", maxBytes)
		text = text[:maxBytes]
	}
	return text
}

// FromRaw normalizes tuples that were produced outside the regex stage,
// such as QIF records, against a known bank pattern.
func (e *Engine) FromRaw(raw []types.RawTransaction, bank *patterns.BankPattern) Result {
	result := Result{Bank: bank, Raw: raw}
	for _, r := range raw {
		tx := e.Normalize(r, bank)
		if tx.Date == nil {
			result.DateFailures++
		}
		if tx.Amount.IsZero() && strings.ContainsAny(r.Amount, "123456789") {
			result.AmountFailures++
		}
		if tx.Type == types.EntryAuto {
			result.Unresolved++
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result
}

// Normalize converts one raw tuple into a typed transaction. Debit
// amounts come out negative; unresolved direction leaves the amount's
// sign as the statement printed it.
func (e *Engine) Normalize(r types.RawTransaction, bank *patterns.BankPattern) types.Transaction {
	amount := e.norm.Amount(r.Amount, bank.Currency)
	if r.Type == types.EntryDebit && amount.IsPositive() {
		amount = amount.Neg()
	}

	return types.Transaction{
		Date:        e.norm.Date(r.Date, bank),
		Description: r.Description,
		Amount:      amount,
		Method:      e.norm.PaymentMethod(r.Description, bank.Country),
		Type:        r.Type,
		Bank:        bank.ID,
		Currency:    bank.Currency,
		Raw:         r,
	}
}
