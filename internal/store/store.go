// Package store persists normalized transactions to SQLite. It is the
// import-side ledger sink; the product's managed backend remains the
// system of record.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/casalfin/statement-engine/internal/types"
)

// Store wraps a SQLite database holding imported transactions
type Store struct {
	db       *sql.DB
	logger   *log.Logger
	timezone *time.Location
}

// New opens (or creates) the transactions database under dataDir
func New(dataDir string, logger *log.Logger, timezone *time.Location) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "transactions.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("failed to set database pragmas: %w", err)
	}

	s := &Store{
		db:       db,
		logger:   logger,
		timezone: timezone,
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db, logger.Debugf); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return s, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			date DATE,
			description TEXT NOT NULL,
			amount DECIMAL(15,2) NOT NULL,
			currency TEXT NOT NULL,
			bank TEXT NOT NULL,
			entry_type TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			-- Raw matched fields, kept for auditing imports
			raw_date TEXT NOT NULL,
			raw_amount TEXT NOT NULL,
			raw_balance TEXT
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_bank ON transactions(bank)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_method ON transactions(payment_method)",
	}
	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Store inserts or replaces one transaction
func (s *Store) Store(ctx context.Context, t types.Transaction) error {
	id := TransactionID(t)
	s.logger.Debug("storing transaction", "id", id, "bank", t.Bank, "amount", t.Amount)

	var date any
	if t.Date != nil {
		date = t.Date.In(s.timezone).Format("2006-01-02")
	}

	var balance any
	if t.Raw.Balance != "" {
		balance = t.Raw.Balance
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, date, description, amount, currency, bank,
			entry_type, payment_method, raw_date, raw_amount, raw_balance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, date, t.Description, t.Amount.String(), t.Currency, t.Bank,
		string(t.Type), string(t.Method), t.Raw.Date, t.Raw.Amount, balance,
	)
	if err != nil {
		return fmt.Errorf("failed to store transaction: %w", err)
	}
	return nil
}

// Get retrieves a transaction by its content hash ID. Returns nil when
// nothing matches.
func (s *Store) Get(ctx context.Context, id string) (*types.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, description, amount, currency, bank,
			entry_type, payment_method, raw_date, raw_amount, raw_balance
		FROM transactions WHERE id = ?
	`, id)

	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListByBank returns transactions for one bank, newest first
func (s *Store) ListByBank(ctx context.Context, bank string, limit int) ([]types.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, description, amount, currency, bank,
			entry_type, payment_method, raw_date, raw_amount, raw_balance
		FROM transactions WHERE bank = ?
		ORDER BY date DESC LIMIT ?
	`, bank, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var out []types.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// FilterExisting returns the subset of transactions not yet stored
func (s *Store) FilterExisting(ctx context.Context, transactions []types.Transaction) ([]types.Transaction, error) {
	var filtered []types.Transaction
	for _, t := range transactions {
		var exists bool
		err := s.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM transactions WHERE id = ?)",
			TransactionID(t),
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check transaction existence: %w", err)
		}
		if !exists {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*types.Transaction, error) {
	var t types.Transaction
	var date sql.NullString
	var amount string
	var entryType, method string
	var balance sql.NullString

	err := row.Scan(&date, &t.Description, &amount, &t.Currency, &t.Bank,
		&entryType, &method, &t.Raw.Date, &t.Raw.Amount, &balance)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		if d, err := time.Parse("2006-01-02", date.String); err == nil {
			t.Date = &d
		}
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("stored amount %q is not a decimal: %w", amount, err)
	}
	t.Amount = dec
	t.Type = types.EntryType(entryType)
	t.Method = types.PaymentMethod(method)
	t.Raw.Description = t.Description
	t.Raw.Type = t.Type
	if balance.Valid {
		t.Raw.Balance = balance.String
	}
	return &t, nil
}

// TransactionID hashes the raw matched fields plus the bank slug, so the
// same statement line imported twice maps to the same row
func TransactionID(t types.Transaction) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", t.Raw.Date, t.Raw.Amount, t.Description, t.Bank)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
