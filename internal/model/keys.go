package model

import (
	"strconv"

	"github.com/cleared-dev/sie/internal/collection"
	"github.com/cleared-dev/sie/internal/key"
)

// DimensionKey is the primary key of a Dimension.
func DimensionKey(n int) string { return strconv.Itoa(n) }

// SubDimensionKey is the primary key of a SubDimension.
func SubDimensionKey(super, sub int) string {
	return key.Compose(key.Int(super), key.Int(sub))
}

// ObjectKey is the primary key of an Object.
func ObjectKey(dim int, object string) string {
	return key.Compose(key.Int(dim), object)
}

// BalanceKey is the primary key of a Balance.
func BalanceKey(offset int, account string) string {
	return key.Compose(key.YearOffset(offset), account)
}

// ObjectBalanceKey is the primary key of an ObjectBalance.
func ObjectBalanceKey(offset int, account string, ref ObjectRef) string {
	return key.Compose(key.YearOffset(offset), account, key.Int(ref.Dimension), ref.Object)
}

// PeriodAmountKey is the primary key of a PeriodAmount.
func PeriodAmountKey(offset int, account string, ref ObjectRef, period string) string {
	return key.Compose(key.YearOffset(offset), account, key.Int(ref.Dimension), ref.Object, period)
}

// VoucherKey is the primary key of a numbered Voucher.
func VoucherKey(series, number string) string {
	return key.Compose(series, number)
}

// NewAccounts returns an empty chart of accounts keyed by account number
// and tagged by account type.
func NewAccounts() *collection.Collection[Account] {
	return collection.New(
		func(a Account) string { return a.Number },
		collection.WithTags(func(a Account) []string {
			if a.Type == "" {
				return nil
			}
			return []string{key.Tag("type", a.Type)}
		}),
	)
}

// NewClassificationCodes returns an empty #SRU collection.
func NewClassificationCodes() *collection.Collection[ClassificationCode] {
	return collection.New(
		func(c ClassificationCode) string { return c.Account },
		collection.WithTags(func(c ClassificationCode) []string {
			return []string{key.Tag("code", c.Code)}
		}),
	)
}

// NewDimensions returns an empty dimension collection.
func NewDimensions() *collection.Collection[Dimension] {
	return collection.New(func(d Dimension) string { return DimensionKey(d.Number) })
}

// NewSubDimensions returns an empty sub-dimension collection keyed by
// (super, sub) and tagged by both numbers.
func NewSubDimensions() *collection.Collection[SubDimension] {
	return collection.New(
		func(d SubDimension) string { return SubDimensionKey(d.Super, d.Number) },
		collection.WithTags(func(d SubDimension) []string {
			return []string{key.Tag("super", d.Super), key.Tag("dim", d.Number)}
		}),
	)
}

// NewObjects returns an empty dimension object collection.
func NewObjects() *collection.Collection[Object] {
	return collection.New(
		func(o Object) string { return ObjectKey(o.Dimension, o.Number) },
		collection.WithTags(func(o Object) []string {
			return []string{key.Tag("dim", o.Dimension), key.Tag("object", o.Number)}
		}),
	)
}

// NewBalances returns an empty balance collection, current year first.
func NewBalances() *collection.Collection[Balance] {
	return collection.New(
		func(b Balance) string { return BalanceKey(b.YearOffset, b.Account) },
		collection.WithTags(func(b Balance) []string {
			return []string{key.Tag("account", b.Account), key.Tag("year", b.YearOffset)}
		}),
	)
}

// NewObjectBalances returns an empty object balance collection.
func NewObjectBalances() *collection.Collection[ObjectBalance] {
	return collection.New(
		func(b ObjectBalance) string { return ObjectBalanceKey(b.YearOffset, b.Account, b.Object) },
		collection.WithTags(func(b ObjectBalance) []string {
			return []string{
				key.Tag("account", b.Account),
				key.Tag("dim", b.Object.Dimension),
				key.Tag("year", b.YearOffset),
			}
		}),
	)
}

// NewPeriodAmounts returns an empty period amount collection.
func NewPeriodAmounts() *collection.Collection[PeriodAmount] {
	return collection.New(
		func(p PeriodAmount) string { return PeriodAmountKey(p.YearOffset, p.Account, p.Object, p.Period) },
		collection.WithTags(func(p PeriodAmount) []string {
			return []string{
				key.Tag("account", p.Account),
				key.Tag("period", p.Period),
				key.Tag("year", p.YearOffset),
			}
		}),
	)
}

// NewVouchers returns an empty voucher collection ordered by series, then
// number, both compared numerically when possible.
func NewVouchers() *collection.Collection[Voucher] {
	return collection.New(
		func(v Voucher) string { return v.Key() },
		collection.WithTags(func(v Voucher) []string {
			return []string{key.Tag("series", v.Series)}
		}),
		collection.WithCompare(CompareVouchers),
	)
}

// CompareVouchers orders vouchers by series, then number, then arrival order
// for unnumbered ones.
func CompareVouchers(a, b Voucher) int {
	if c := collection.NaturalCompare(a.Series, b.Series); c != 0 {
		return c
	}
	if c := collection.NaturalCompare(a.Number, b.Number); c != 0 {
		return c
	}
	return a.Seq - b.Seq
}
