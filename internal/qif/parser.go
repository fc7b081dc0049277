// Package qif parses QIF statement exports into raw transaction tuples.
// QIF files carry their own field markers, so they bypass the regex
// extraction stage; dates and amounts still go through the normalizer.
package qif

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/casalfin/statement-engine/internal/types"
)

// ParseReader reads QIF records from r. Field markers: D date, T amount,
// P payee, M memo. A caret terminates each record. QIF amounts are
// signed, so the entry type is taken from the sign.
func ParseReader(r io.Reader) ([]types.RawTransaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	var transactions []types.RawTransaction
	current := types.RawTransaction{Type: types.EntryAuto}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case '^':
			if current.Date != "" {
				transactions = append(transactions, finish(current))
				current = types.RawTransaction{Type: types.EntryAuto}
			}
		case 'D':
			current.Date = line[1:]
		case 'T':
			current.Amount = line[1:]
		case 'P':
			current.Description = line[1:]
		case 'M':
			if current.Description == "" {
				current.Description = line[1:]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if current.Date != "" {
		transactions = append(transactions, finish(current))
	}

	return transactions, nil
}

// ParseFile opens filename and parses it as QIF
func ParseFile(filename string) ([]types.RawTransaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f)
}

func finish(t types.RawTransaction) types.RawTransaction {
	if strings.HasPrefix(strings.TrimSpace(t.Amount), "-") {
		t.Type = types.EntryDebit
	} else if t.Amount != "" {
		t.Type = types.EntryCredit
	}
	return t
}
