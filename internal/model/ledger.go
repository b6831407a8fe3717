// Package model defines the ledger entities and the Ledger aggregate that
// owns one collection per entity type.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/cleared-dev/sie/internal/collection"
	"github.com/cleared-dev/sie/internal/key"
)

// ErrKeyChanged is returned when an update would change an entity's key.
var ErrKeyChanged = errors.New("key attribute changed")

// Program identifies the software that produced a file (#PROGRAM).
type Program struct {
	Name    string
	Version string
}

// Generated records when and by whom a file was produced (#GEN).
type Generated struct {
	Date      time.Time
	Signature string
}

// OrgNumber is the company's registration number (#ORGNR).
type OrgNumber struct {
	Number      string
	Acquisition string
	Activity    string
}

// Address is the company's contact address (#ADRESS).
type Address struct {
	Contact string
	Street  string
	Postal  string
	Phone   string
}

// FiscalYear is one #RAR range. Offset 0 is the current year, -1 the
// previous one.
type FiscalYear struct {
	Offset int
	Start  time.Time
	End    time.Time
}

// Ledger is the aggregate root of one SIE document.
type Ledger struct {
	Flag         int
	Program      Program
	Format       string
	Generated    Generated
	SieType      int
	Prosa        string
	CompanyType  string
	CompanyID    string
	OrgNumber    OrgNumber
	IndustryCode string
	Address      Address
	CompanyName  string
	FiscalYears  []FiscalYear
	TaxYear      int
	BalanceDate  time.Time
	ChartType    string
	Currency     string

	Accounts        *collection.Collection[Account]
	Classifications *collection.Collection[ClassificationCode]
	Dimensions      *collection.Collection[Dimension]
	SubDimensions   *collection.Collection[SubDimension]
	Objects         *collection.Collection[Object]

	OpeningBalances       *collection.Collection[Balance]
	ClosingBalances       *collection.Collection[Balance]
	Results               *collection.Collection[Balance]
	ObjectOpeningBalances *collection.Collection[ObjectBalance]
	ObjectClosingBalances *collection.Collection[ObjectBalance]
	PeriodBalances        *collection.Collection[PeriodAmount]
	PeriodBudgets         *collection.Collection[PeriodAmount]

	Vouchers *collection.Collection[Voucher]
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		Accounts:              NewAccounts(),
		Classifications:       NewClassificationCodes(),
		Dimensions:            NewDimensions(),
		SubDimensions:         NewSubDimensions(),
		Objects:               NewObjects(),
		OpeningBalances:       NewBalances(),
		ClosingBalances:       NewBalances(),
		Results:               NewBalances(),
		ObjectOpeningBalances: NewObjectBalances(),
		ObjectClosingBalances: NewObjectBalances(),
		PeriodBalances:        NewPeriodAmounts(),
		PeriodBudgets:         NewPeriodAmounts(),
		Vouchers:              NewVouchers(),
	}
}

// HasDimension reports whether n is declared as a dimension or as a
// sub-dimension.
func (l *Ledger) HasDimension(n int) bool {
	return l.Dimensions.Exists(DimensionKey(n)) || l.SubDimensions.HasTag(key.Tag("dim", n))
}

// HasObject reports whether ref points at a declared object.
func (l *Ledger) HasObject(ref ObjectRef) bool {
	return l.Objects.Exists(ObjectKey(ref.Dimension, ref.Object))
}

// FiscalYear returns the #RAR range for offset.
func (l *Ledger) FiscalYear(offset int) (FiscalYear, bool) {
	for _, fy := range l.FiscalYears {
		if fy.Offset == offset {
			return fy, true
		}
	}
	return FiscalYear{}, false
}

// AccountsByType returns the accounts tagged with t in insertion order.
func (l *Ledger) AccountsByType(t AccountType) []Account {
	return l.Accounts.ByTag(key.Tag("type", t))
}

// UpdateAccount applies fn to a stored account. Non-key attributes may
// change; the account is reinserted so its tags follow the new values.
func (l *Ledger) UpdateAccount(number string, fn func(*Account)) error {
	acct, err := l.Accounts.Get(number)
	if err != nil {
		return err
	}
	fn(&acct)
	if acct.Number != number {
		return fmt.Errorf("account %s: %w", number, ErrKeyChanged)
	}
	return l.Accounts.Replace(acct)
}

// LineCount returns the number of transaction lines across all vouchers.
func (l *Ledger) LineCount() int {
	n := 0
	for _, v := range l.Vouchers.All() {
		n += len(v.Lines)
	}
	return n
}
