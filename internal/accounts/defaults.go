package accounts

import "github.com/cleared-dev/sie/internal/model"

// DefaultChart returns a small BAS chart of accounts for a new ledger.
func DefaultChart() []Entry {
	return []Entry{
		{Account: model.Account{Number: "1510", Name: "Kundfordringar", Type: model.AccountTypeAsset}, SRU: 7251},
		{Account: model.Account{Number: "1910", Name: "Kassa", Type: model.AccountTypeAsset}, SRU: 7281},
		{Account: model.Account{Number: "1930", Name: "Företagskonto", Type: model.AccountTypeAsset}, SRU: 7281},
		{Account: model.Account{Number: "2081", Name: "Aktiekapital", Type: model.AccountTypeLiability}, SRU: 7301},
		{Account: model.Account{Number: "2440", Name: "Leverantörsskulder", Type: model.AccountTypeLiability}, SRU: 7368},
		{Account: model.Account{Number: "2611", Name: "Utgående moms 25%", Type: model.AccountTypeLiability}, SRU: 7369},
		{Account: model.Account{Number: "2640", Name: "Ingående moms", Type: model.AccountTypeLiability}, SRU: 7369},
		{Account: model.Account{Number: "3010", Name: "Försäljning", Type: model.AccountTypeRevenue}, SRU: 7410},
		{Account: model.Account{Number: "5010", Name: "Lokalhyra", Type: model.AccountTypeExpense}, SRU: 7513},
		{Account: model.Account{Number: "5410", Name: "Förbrukningsinventarier", Type: model.AccountTypeExpense}, SRU: 7513},
		{Account: model.Account{Number: "6250", Name: "Porto", Type: model.AccountTypeExpense}, SRU: 7513},
		{Account: model.Account{Number: "6570", Name: "Bankkostnader", Type: model.AccountTypeExpense}, SRU: 7513},
	}
}
