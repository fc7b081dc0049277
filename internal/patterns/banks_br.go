package patterns

// brazilBanks lists the supported Brazilian institutions. Statement
// exports use DD/MM dates and European-style amounts (1.234,56).
var brazilBanks = []*BankPattern{
	{
		ID:       "itau_br",
		Name:     "Itaú Unibanco",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"itaú",
			"itau unibanco",
			"banco itaú",
			"itau.com.br",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD/MM/YY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
			`R\$\s?-?\d+,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "ted", "doc", "boleto", "cartão", "compra", "pagamento"},
		BalancePatterns:     []string{"saldo", "saldo anterior", "saldo final", "saldo do dia"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})\s*-?\s*([DC])\b`,
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
			`(\d{2}/\d{2})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "lançamento", "valor", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"es": {"fecha", "concepto", "importe", "saldo"},
		},
	},
	{
		ID:       "bradesco_br",
		Name:     "Banco Bradesco",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"bradesco",
			"banco bradesco",
			"bradesco.com.br",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD/MM/YY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "ted", "doc", "boleto", "transferência", "pagamento"},
		BalancePatterns:     []string{"saldo", "saldo anterior", "saldo atual"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*([DC])\b`,
			`(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "histórico", "crédito", "débito", "saldo"},
			"en": {"date", "description", "credit", "debit", "balance"},
			"es": {"fecha", "concepto", "crédito", "débito", "saldo"},
		},
	},
	{
		ID:       "nubank_br",
		Name:     "Nubank",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"nubank",
			"nu pagamentos",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`R\$\s?-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "boleto", "compra no débito", "compra no crédito", "transferência"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+R\$\s?(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "descrição", "valor"},
			"en": {"date", "description", "amount"},
			"es": {"fecha", "descripción", "importe"},
		},
	},
	{
		ID:       "bb_br",
		Name:     "Banco do Brasil",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"banco do brasil",
			"bb.com.br",
		},
		DateFormats: []string{"DD/MM/YYYY", "DD/MM/YY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "ted", "doc", "boleto", "compra com cartão"},
		BalancePatterns:     []string{"saldo", "saldo anterior"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*([DC])\b`,
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "histórico", "valor", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"es": {"fecha", "concepto", "importe", "saldo"},
		},
	},
	{
		ID:       "caixa_br",
		Name:     "Caixa Econômica Federal",
		Country:  "BR",
		Currency: "BRL",
		// Bare "caixa" would shadow CaixaBank (ES), so only the full
		// names are listed here.
		HeaderPatterns: []string{
			"caixa econômica federal",
			"caixa economica federal",
			"caixa.gov.br",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}\s?[DC]`,
		},
		DescriptionPatterns: []string{"pix", "ted", "doc", "boleto", "compra", "saque"},
		BalancePatterns:     []string{"saldo", "saldo dia"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*([DC])\b`,
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data mov", "histórico", "valor", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"es": {"fecha", "concepto", "importe", "saldo"},
		},
	},
	{
		// Listed before the Spanish Santander entry: these headers are
		// the specific ones, the ES entry carries the generic name.
		ID:       "santander_br",
		Name:     "Santander Brasil",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"santander brasil",
			"banco santander (brasil)",
			"santander.com.br",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`-?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "ted", "doc", "boleto", "pagamento", "transferência"},
		BalancePatterns:     []string{"saldo", "saldo disponível"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "descrição", "valor", "saldo"},
			"en": {"date", "description", "amount", "balance"},
			"es": {"fecha", "concepto", "importe", "saldo"},
		},
	},
	{
		ID:       "inter_br",
		Name:     "Banco Inter",
		Country:  "BR",
		Currency: "BRL",
		HeaderPatterns: []string{
			"banco inter",
			"bancointer.com.br",
		},
		DateFormats: []string{"DD/MM/YYYY"},
		AmountPatterns: []string{
			`-?R\$\s?\d{1,3}(\.\d{3})*,\d{2}`,
		},
		DescriptionPatterns: []string{"pix", "boleto", "compra", "transferência"},
		BalancePatterns:     []string{"saldo"},
		TransactionPatterns: []string{
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+-?R\$\s?(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
			`(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\d{1,3}(?:\.\d{3})*,\d{2})`,
		},
		ColumnHeaders: map[string][]string{
			"pt": {"data", "descrição", "valor"},
			"en": {"date", "description", "amount"},
			"es": {"fecha", "descripción", "importe"},
		},
	},
}
