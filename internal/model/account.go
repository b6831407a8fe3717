package model

// AccountType classifies accounts in the chart of accounts (#KTYP).
type AccountType string

const (
	AccountTypeAsset     AccountType = "T" // tillgång
	AccountTypeLiability AccountType = "S" // skuld
	AccountTypeExpense   AccountType = "K" // kostnad
	AccountTypeRevenue   AccountType = "I" // intäkt
)

// Valid reports whether t is one of the four SIE account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeExpense, AccountTypeRevenue:
		return true
	}
	return false
}

// Account is one entry of the chart of accounts (#KONTO, #KTYP, #ENHET).
type Account struct {
	Number string
	Name   string
	Type   AccountType // "" when no #KTYP was given
	Unit   string
}

// AccountNumber implements AccountRef.
func (a Account) AccountNumber() string { return a.Number }

// ClassificationCode maps an account to a tax reporting code (#SRU).
type ClassificationCode struct {
	Account string
	Code    int
}

// AccountNumber implements AccountRef.
func (c ClassificationCode) AccountNumber() string { return c.Account }

// AccountRef is anything carrying an account number.
type AccountRef interface {
	AccountNumber() string
}
