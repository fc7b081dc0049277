package patterns

// usBanks lists the supported United States institutions. Statement
// exports use MM/DD dates and US-style amounts (1,234.56).
//
// Chase is identified by "chase bank" and "jpmorgan chase" rather than the
// bare word "chase", which appears inside "purchase" on almost every card
// statement.
var usBanks = []*BankPattern{
	{
		ID:       "chase_us",
		Name:     "Chase",
		Country:  "US",
		Currency: "USD",
		HeaderPatterns: []string{
			"chase bank",
			"jpmorgan chase",
			"chase.com",
		},
		DateFormats: []string{"MM/DD/YYYY", "MM/DD/YY"},
		AmountPatterns: []string{
			`-?\$?\d{1,3}(,\d{3})*\.\d{2}`,
		},
		DescriptionPatterns: []string{"ach", "wire", "zelle", "check", "card purchase", "payment"},
		BalancePatterns:     []string{"balance", "beginning balance", "ending balance"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
			`(\d{2}/\d{2})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
			"es": {"fecha", "descripción", "importe", "saldo"},
		},
	},
	{
		ID:       "bofa_us",
		Name:     "Bank of America",
		Country:  "US",
		Currency: "USD",
		HeaderPatterns: []string{
			"bank of america",
			"bankofamerica.com",
		},
		DateFormats: []string{"MM/DD/YYYY", "MM/DD/YY"},
		AmountPatterns: []string{
			`-?\$?\d{1,3}(,\d{3})*\.\d{2}`,
		},
		DescriptionPatterns: []string{"ach", "wire", "zelle", "check", "card", "transfer"},
		BalancePatterns:     []string{"balance", "ending balance"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"en": {"date", "description", "amount"},
			"pt": {"data", "descrição", "valor"},
			"es": {"fecha", "descripción", "importe"},
		},
	},
	{
		ID:       "wells_fargo_us",
		Name:     "Wells Fargo",
		Country:  "US",
		Currency: "USD",
		HeaderPatterns: []string{
			"wells fargo",
			"wellsfargo.com",
		},
		DateFormats: []string{"MM/DD/YYYY", "MM/DD/YY"},
		AmountPatterns: []string{
			`-?\$?\d{1,3}(,\d{3})*\.\d{2}`,
		},
		DescriptionPatterns: []string{"ach", "wire", "zelle", "check", "purchase", "transfer"},
		BalancePatterns:     []string{"balance", "daily balance"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
			`(\d{1,2}/\d{1,2})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"en": {"date", "description", "deposits", "withdrawals", "balance"},
			"pt": {"data", "descrição", "depósitos", "saques", "saldo"},
			"es": {"fecha", "descripción", "depósitos", "retiros", "saldo"},
		},
	},
	{
		ID:       "citi_us",
		Name:     "Citibank",
		Country:  "US",
		Currency: "USD",
		HeaderPatterns: []string{
			"citibank",
			"citi.com",
		},
		DateFormats: []string{"MM/DD/YYYY", "MM/DD/YY"},
		AmountPatterns: []string{
			`-?\$?\d{1,3}(,\d{3})*\.\d{2}`,
		},
		DescriptionPatterns: []string{"ach", "wire", "check", "card", "payment"},
		BalancePatterns:     []string{"balance"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"en": {"date", "description", "amount", "balance"},
			"pt": {"data", "descrição", "valor", "saldo"},
			"es": {"fecha", "descripción", "importe", "saldo"},
		},
	},
	{
		ID:       "capital_one_us",
		Name:     "Capital One",
		Country:  "US",
		Currency: "USD",
		HeaderPatterns: []string{
			"capital one",
			"capitalone.com",
		},
		DateFormats: []string{"MM/DD/YYYY", "MM/DD/YY"},
		AmountPatterns: []string{
			`-?\$?\d{1,3}(,\d{3})*\.\d{2}`,
		},
		DescriptionPatterns: []string{"ach", "zelle", "card", "transfer", "payment"},
		BalancePatterns:     []string{"balance"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"en": {"date", "description", "debit", "credit", "balance"},
			"pt": {"data", "descrição", "débito", "crédito", "saldo"},
			"es": {"fecha", "descripción", "débito", "crédito", "saldo"},
		},
	},
}
