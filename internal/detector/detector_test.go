package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casalfin/statement-engine/internal/patterns"
)

func TestDetectItau(t *testing.T) {
	reg := patterns.Default()

	// Detection is case- and diacritic-insensitive
	for _, header := range []string{"ITAÚ", "itau", "Itaú", "banco itaú unibanco s.a."} {
		text := "Extrato de conta corrente\n" + header + "\nAgência 1234"
		bank := Detect(reg, text, "pt")
		require.NotNil(t, bank, "header %q should detect", header)
		assert.Equal(t, "itau_br", bank.ID)
	}
}

func TestDetectDeterministic(t *testing.T) {
	reg := patterns.Default()
	text := "Bank of America statement for account ending 1234"

	first := Detect(reg, text, "en")
	second := Detect(reg, text, "en")
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, "bofa_us", first.ID)
}

func TestDetectUnknownBank(t *testing.T) {
	reg := patterns.Default()
	assert.Nil(t, Detect(reg, "statement from some credit union nobody registered", "en"))
	assert.Nil(t, Detect(reg, "", "en"))
}

func TestDetectSantanderSubsidiaryBeforeParent(t *testing.T) {
	reg := patterns.Default()

	br := Detect(reg, "Banco Santander (Brasil) S.A. extrato", "pt")
	require.NotNil(t, br)
	assert.Equal(t, "santander_br", br.ID)

	es := Detect(reg, "Banco Santander, S.A. extracto de cuenta", "es")
	require.NotNil(t, es)
	assert.Equal(t, "santander_es", es.ID)
}

// Registry order decides the winner when header substrings overlap, so
// reordering two overlapping entries changes the detected result.
func TestDetectFirstMatchInRegistryOrderWins(t *testing.T) {
	generic := &patterns.BankPattern{
		ID:                  "banco_generic",
		Name:                "Banco",
		Country:             "BR",
		Currency:            "BRL",
		HeaderPatterns:      []string{"banco"},
		DateFormats:         []string{"DD/MM/YYYY"},
		TransactionPatterns: []string{`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d+,\d{2})`},
	}
	specific := &patterns.BankPattern{
		ID:                  "banco_premier",
		Name:                "Banco Premier",
		Country:             "BR",
		Currency:            "BRL",
		HeaderPatterns:      []string{"banco premier"},
		DateFormats:         []string{"DD/MM/YYYY"},
		TransactionPatterns: []string{`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d+,\d{2})`},
	}

	text := "Banco Premier - extrato mensal"

	specificFirst, err := patterns.New(specific, generic)
	require.NoError(t, err)
	got := Detect(specificFirst, text, "pt")
	require.NotNil(t, got)
	assert.Equal(t, "banco_premier", got.ID)

	genericFirst, err := patterns.New(generic, specific)
	require.NoError(t, err)
	got = Detect(genericFirst, text, "pt")
	require.NotNil(t, got)
	assert.Equal(t, "banco_generic", got.ID)
}

func TestFoldStripsDiacritics(t *testing.T) {
	assert.Equal(t, "itau cartao credito", fold("Itaú Cartão Crédito"))
	assert.Equal(t, "caixa economica", fold("CAIXA ECONÔMICA"))
	assert.Equal(t, "domiciliacion", fold("Domiciliación"))
}
