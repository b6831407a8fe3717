package model

import "github.com/shopspring/decimal"

// Balance is an account balance for one fiscal year (#IB, #UB, #RES).
type Balance struct {
	YearOffset int
	Account    string
	Amount     decimal.Decimal
	Quantity   decimal.NullDecimal
}

// AccountNumber implements AccountRef.
func (b Balance) AccountNumber() string { return b.Account }

// ObjectBalance is an account balance qualified by one dimension object
// (#OIB, #OUB).
type ObjectBalance struct {
	YearOffset int
	Account    string
	Object     ObjectRef
	Amount     decimal.Decimal
	Quantity   decimal.NullDecimal
}

// AccountNumber implements AccountRef.
func (b ObjectBalance) AccountNumber() string { return b.Account }

// ObjectRefs implements ObjectReferrer.
func (b ObjectBalance) ObjectRefs() []ObjectRef { return []ObjectRef{b.Object} }

// PeriodAmount is an actual or budgeted amount for one month (#PSALDO,
// #PBUDGET). Object is zero for the account total.
type PeriodAmount struct {
	YearOffset int
	Period     string // YYYYMM
	Account    string
	Object     ObjectRef
	Amount     decimal.Decimal
	Quantity   decimal.NullDecimal
}

// AccountNumber implements AccountRef.
func (p PeriodAmount) AccountNumber() string { return p.Account }

// ObjectRefs implements ObjectReferrer.
func (p PeriodAmount) ObjectRefs() []ObjectRef {
	if p.Object.IsZero() {
		return nil
	}
	return []ObjectRef{p.Object}
}
