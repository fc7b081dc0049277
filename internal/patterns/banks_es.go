package patterns

// spainBanks lists the supported Spanish institutions. Statement exports
// use DD/MM or DD-MM dates and European-style amounts (1.234,56).
var spainBanks = []*BankPattern{
	{
		ID:       "bbva_es",
		Name:     "BBVA",
		Country:  "ES",
		Currency: "EUR",
		HeaderPatterns: []string{
			"bbva",
			"banco bilbao vizcaya",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD-MM-YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}\s?€?`,
		},
		DescriptionPatterns: []string{"bizum", "transferencia", "tarjeta", "recibo", "domiciliación"},
		BalancePatterns:     []string{"saldo", "saldo anterior"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})\s?€?`,
			`(\d{2}-\d{2}-\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"es": {"fecha", "concepto", "importe", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
		},
	},
	{
		ID:       "caixabank_es",
		Name:     "CaixaBank",
		Country:  "ES",
		Currency: "EUR",
		HeaderPatterns: []string{
			"caixabank",
			"la caixa",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD-MM-YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"bizum", "transferencia", "tarjeta", "recibo"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"es": {"fecha", "concepto", "importe", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
		},
	},
	{
		ID:       "santander_es",
		Name:     "Banco Santander",
		Country:  "ES",
		Currency: "EUR",
		// Generic "santander" goes last in the header list; the Brazilian
		// subsidiary's entry precedes this one in the registry and owns
		// the "santander brasil" headers.
		HeaderPatterns: []string{
			"banco santander",
			"santander.es",
			"santander",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD-MM-YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"bizum", "transferencia", "tarjeta", "recibo", "domiciliación"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
			`(\d{2}-\d{2}-\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"es": {"fecha", "concepto", "importe", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
		},
	},
	{
		ID:       "sabadell_es",
		Name:     "Banco Sabadell",
		Country:  "ES",
		Currency: "EUR",
		HeaderPatterns: []string{
			"banco sabadell",
			"sabadell",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"bizum", "transferencia", "tarjeta", "recibo"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"es": {"fecha", "concepto", "importe", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
		},
	},
	{
		ID:       "bankinter_es",
		Name:     "Bankinter",
		Country:  "ES",
		Currency: "EUR",
		HeaderPatterns: []string{
			"bankinter",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"bizum", "transferencia", "tarjeta", "recibo"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"es": {"fecha contable", "concepto", "importe", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
		},
	},
}
