package engine

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casalfin/statement-engine/internal/patterns"
	"github.com/casalfin/statement-engine/internal/types"
)

func newTestEngine(config Config) *Engine {
	return New(patterns.Default(), log.New(io.Discard), config)
}

func TestParseItauStatement(t *testing.T) {
	e := newTestEngine(Config{})

	text := `Itaú Unibanco - Extrato
10/03/2024 COMPRA CARTÃO SUPERMERCADO 150,00
`
	result, err := e.Parse(context.Background(), text, "pt")
	require.NoError(t, err)
	require.NotNil(t, result.Bank)
	assert.Equal(t, "itau_br", result.Bank.ID)

	require.Len(t, result.Raw, 1)
	assert.Equal(t, "10/03/2024", result.Raw[0].Date)
	assert.Contains(t, result.Raw[0].Description, "COMPRA CARTÃO SUPERMERCADO")
	assert.Equal(t, "150,00", result.Raw[0].Amount)

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	require.NotNil(t, tx.Date)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), *tx.Date)
	// "compra" resolves to debit, so the amount comes out negative
	assert.Equal(t, types.EntryDebit, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-150")), "got %s", tx.Amount)
	// "cartão" keyword
	assert.Equal(t, types.MethodCredit, tx.Method)
	assert.Equal(t, "BRL", tx.Currency)
	assert.Equal(t, "itau_br", tx.Bank)

	assert.Zero(t, result.DateFailures)
	assert.Zero(t, result.AmountFailures)
	assert.Zero(t, result.Unresolved)
}

func TestParseUnknownBank(t *testing.T) {
	e := newTestEngine(Config{})

	result, err := e.Parse(context.Background(), "statement from an unregistered institution", "en")
	require.NoError(t, err)
	assert.Nil(t, result.Bank)
	assert.Empty(t, result.Transactions)
}

func TestParseCountsFailures(t *testing.T) {
	e := newTestEngine(Config{})

	// The second line's date has an out-of-range month, the third line's
	// description carries no direction keyword
	text := `Itaú Unibanco
10/03/2024 PAGAMENTO CONDOMINIO 900,00
45/99/2024 PAGAMENTO ALUGUEL 2.000,00
12/03/2024 TARIFA PACOTE SERVICOS 35,90
`
	result, err := e.Parse(context.Background(), text, "pt")
	require.NoError(t, err)
	require.NotNil(t, result.Bank)
	require.Len(t, result.Transactions, 3)

	assert.Equal(t, 1, result.DateFailures)
	assert.Equal(t, 1, result.Unresolved)
	assert.Nil(t, result.Transactions[1].Date)
	assert.Equal(t, types.EntryAuto, result.Transactions[2].Type)
}

func TestParseWithSkipsDetection(t *testing.T) {
	e := newTestEngine(Config{})
	bank, ok := e.Registry().ByID("chase_us")
	require.True(t, ok)

	// No Chase header anywhere in the text
	text := "03/15/2024 CARD PURCHASE COFFEE SHOP $4.50\n"
	result, err := e.ParseWith(context.Background(), text, bank)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	require.NotNil(t, tx.Date)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *tx.Date)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-4.5")), "got %s", tx.Amount)
	assert.Equal(t, types.MethodCredit, tx.Method) // "card"
}

func TestParseContextCanceled(t *testing.T) {
	e := newTestEngine(Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Parse(ctx, "Itaú Unibanco", "pt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseInputSizeGuard(t *testing.T) {
	e := newTestEngine(Config{MaxInputBytes: 64})

	text := "Itaú Unibanco\n10/03/2024 COMPRA CARTÃO SUPERMERCADO 150,00\n"
	for len(text) < 1024 {
		text += "10/03/2024 COMPRA PADARIA 10,00\n"
	}
	result, err := e.Parse(context.Background(), text, "pt")
	require.NoError(t, err)
	require.NotNil(t, result.Bank)
	// Only what survived truncation is extracted
	assert.LessOrEqual(t, len(result.Transactions), 1)
}

func TestFromRawNormalizesQIFTuples(t *testing.T) {
	e := newTestEngine(Config{})
	bank, ok := e.Registry().ByID("itau_br")
	require.True(t, ok)

	raw := []types.RawTransaction{
		{Date: "10/03/2024", Description: "PIX RECEBIDO", Amount: "1.200,00", Type: types.EntryCredit},
	}
	result := e.FromRaw(raw, bank)
	require.Len(t, result.Transactions, 1)
	assert.True(t, result.Transactions[0].Amount.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, types.MethodPix, result.Transactions[0].Method)
}
