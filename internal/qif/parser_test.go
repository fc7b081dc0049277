package qif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casalfin/statement-engine/internal/types"
)

func TestParseReader(t *testing.T) {
	input := `!Type:Bank
D10/03/2024
T-150.00
PSUPERMERCADO CENTRAL
^
D11/03/2024
T1200.00
PSALARY DEPOSIT
MMarch salary
^
`
	got, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "10/03/2024", got[0].Date)
	assert.Equal(t, "SUPERMERCADO CENTRAL", got[0].Description)
	assert.Equal(t, "-150.00", got[0].Amount)
	assert.Equal(t, types.EntryDebit, got[0].Type)

	assert.Equal(t, "SALARY DEPOSIT", got[1].Description)
	assert.Equal(t, types.EntryCredit, got[1].Type)
}

func TestParseReaderUnterminatedRecord(t *testing.T) {
	input := "D10/03/2024\nT-5.00\nPCOFFEE\n"
	got, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "COFFEE", got[0].Description)
}

func TestParseReaderMemoFallback(t *testing.T) {
	input := "D10/03/2024\nT-5.00\nMonly a memo\n^\n"
	got, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only a memo", got[0].Description)
}

func TestParseReaderEmpty(t *testing.T) {
	got, err := ParseReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
