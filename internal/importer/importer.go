// Package importer runs the batch import pipeline: read statement
// documents, parse them through the engine, filter out transactions that
// were already imported and persist the rest.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/casalfin/statement-engine/internal/document"
	"github.com/casalfin/statement-engine/internal/engine"
	"github.com/casalfin/statement-engine/internal/qif"
	"github.com/casalfin/statement-engine/internal/types"
)

// TransactionStore is the persistence surface the importer needs
type TransactionStore interface {
	Store(ctx context.Context, t types.Transaction) error
	FilterExisting(ctx context.Context, transactions []types.Transaction) ([]types.Transaction, error)
}

// Config controls one import run
type Config struct {
	// BankID forces a registry pattern instead of header detection.
	// Required for QIF files, which carry no institution signature.
	BankID string
	// Language is the statement language hint (pt, en, es)
	Language string
	// Concurrency bounds the number of files processed in parallel
	Concurrency int
	// Progress enables the progress bar
	Progress bool
	// DryRun parses without persisting
	DryRun bool
	// Limit caps transactions taken per file (0 = no limit)
	Limit int
}

// FileResult summarizes the import of one statement file
type FileResult struct {
	File           string              `json:"file"`
	Bank           string              `json:"bank,omitempty"`
	Transactions   []types.Transaction `json:"transactions"`
	Stored         int                 `json:"stored"`
	AlreadyKnown   int                 `json:"already_known"`
	DateFailures   int                 `json:"date_failures"`
	AmountFailures int                 `json:"amount_failures"`
	Unresolved     int                 `json:"unresolved"`
}

// Importer wires the engine to a transaction store
type Importer struct {
	engine *engine.Engine
	store  TransactionStore
	logger *log.Logger
}

// New creates an Importer
func New(eng *engine.Engine, store TransactionStore, logger *log.Logger) *Importer {
	return &Importer{engine: eng, store: store, logger: logger}
}

// Run imports the given statement files. Files are processed in parallel
// up to config.Concurrency; results come back in input order. A file
// whose bank cannot be detected produces a FileResult with an empty Bank
// rather than failing the run.
func (i *Importer) Run(ctx context.Context, files []string, config Config) ([]FileResult, error) {
	startTime := time.Now()
	i.logger.Info("starting import", "files", len(files), "dry_run", config.DryRun)

	var progress Progress
	if config.Progress {
		progress = NewBarProgress(len(files))
	} else {
		progress = NewNoopProgress()
	}
	defer progress.Close()

	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]FileResult, len(files))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for idx, file := range files {
		idx, file := idx, file
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			fileStart := time.Now()
			result, err := i.importFile(gCtx, file, config)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				i.logger.Error("failed to import statement",
					"file", file,
					"error", err,
					"duration", time.Since(fileStart))
				return fmt.Errorf("error importing %s: %w", file, err)
			}
			i.logger.Debug("statement imported",
				"file", file,
				"bank", result.Bank,
				"stored", result.Stored,
				"duration", time.Since(fileStart))

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			return progress.Add(1)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	i.logger.Info("import finished",
		"files", len(files),
		"duration", time.Since(startTime))
	return results, nil
}

func (i *Importer) importFile(ctx context.Context, file string, config Config) (FileResult, error) {
	result := FileResult{File: file}

	parsed, err := i.parseFile(ctx, file, config)
	if err != nil {
		return result, err
	}
	if parsed.Bank == nil {
		i.logger.Warn("no bank pattern matched, skipping file", "file", file)
		return result, nil
	}

	result.Bank = parsed.Bank.ID
	result.DateFailures = parsed.DateFailures
	result.AmountFailures = parsed.AmountFailures
	result.Unresolved = parsed.Unresolved

	transactions := parsed.Transactions
	if config.Limit > 0 && len(transactions) > config.Limit {
		transactions = transactions[:config.Limit]
	}
	result.Transactions = transactions

	if config.DryRun {
		return result, nil
	}

	fresh, err := i.store.FilterExisting(ctx, transactions)
	if err != nil {
		return result, fmt.Errorf("error filtering existing transactions: %w", err)
	}
	result.AlreadyKnown = len(transactions) - len(fresh)

	for _, t := range fresh {
		if err := i.store.Store(ctx, t); err != nil {
			return result, fmt.Errorf("error storing transaction: %w", err)
		}
		result.Stored++
	}

	return result, nil
}

func (i *Importer) parseFile(ctx context.Context, file string, config Config) (engine.Result, error) {
	if document.IsQIF(file) {
		if config.BankID == "" {
			return engine.Result{}, fmt.Errorf("qif files carry no bank signature, a bank id is required")
		}
		bank, ok := i.engine.Registry().ByID(config.BankID)
		if !ok {
			return engine.Result{}, fmt.Errorf("unknown bank id %q", config.BankID)
		}

		f, err := os.Open(file)
		if err != nil {
			return engine.Result{}, err
		}
		defer f.Close()

		raw, err := qif.ParseReader(f)
		if err != nil {
			return engine.Result{}, fmt.Errorf("error parsing qif: %w", err)
		}
		return i.engine.FromRaw(adaptQIFAmounts(raw, bank.Currency), bank), nil
	}

	text, err := document.ExtractText(file)
	if err != nil {
		return engine.Result{}, err
	}

	if config.BankID != "" {
		bank, ok := i.engine.Registry().ByID(config.BankID)
		if !ok {
			return engine.Result{}, fmt.Errorf("unknown bank id %q", config.BankID)
		}
		return i.engine.ParseWith(ctx, text, bank)
	}
	return i.engine.Parse(ctx, text, config.Language)
}

// adaptQIFAmounts rewrites QIF's dot-decimal amounts into the bank's
// amount convention, so the normalizer's currency rules apply cleanly.
func adaptQIFAmounts(raw []types.RawTransaction, currency string) []types.RawTransaction {
	if currency != "BRL" && currency != "EUR" {
		return raw
	}
	for idx := range raw {
		s := strings.ReplaceAll(raw[idx].Amount, ",", "")
		raw[idx].Amount = strings.Replace(s, ".", ",", 1)
	}
	return raw
}
