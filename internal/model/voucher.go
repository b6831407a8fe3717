package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie/internal/key"
)

// TransKind distinguishes regular voucher lines from corrections.
type TransKind string

const (
	TransRegular TransKind = "TRANS"
	TransRemoved TransKind = "RTRANS" // removed by a later correction
	TransAdded   TransKind = "BTRANS" // added by a later correction
)

// Voucher is a dated, numbered journal entry (#VER).
type Voucher struct {
	Series    string
	Number    string // may be empty in import files
	Seq       int    // arrival order of an unnumbered voucher in its series; never written
	Date      time.Time
	Text      string
	RegDate   time.Time // zero when absent
	Signature string
	Lines     []Transaction
}

// Transaction is one line of a voucher. A positive amount is a debit.
type Transaction struct {
	Kind      TransKind
	Account   string
	Objects   []ObjectRef
	Amount    decimal.Decimal
	Date      time.Time // zero when absent
	Text      string
	Quantity  decimal.NullDecimal
	Signature string
}

// AccountNumber implements AccountRef.
func (t Transaction) AccountNumber() string { return t.Account }

// ObjectRefs implements ObjectReferrer.
func (t Transaction) ObjectRefs() []ObjectRef { return t.Objects }

// Key returns the primary key of v. Unnumbered vouchers are told apart by
// Seq.
func (v Voucher) Key() string {
	if v.Number == "" {
		return key.Compose(v.Series, "", key.Int(v.Seq))
	}
	return VoucherKey(v.Series, v.Number)
}

// ID returns "series number" for messages.
func (v Voucher) ID() string {
	if v.Number == "" {
		return v.Series
	}
	return v.Series + " " + v.Number
}
