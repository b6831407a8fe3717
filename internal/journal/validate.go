package journal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/record"
)

// ErrUnresolvedReference is the sentinel every ReferenceError matches.
var ErrUnresolvedReference = errors.New("unresolved reference")

// Reference kinds reported in ReferenceError.Kind.
const (
	KindAccount        = "account"
	KindDimension      = "dimension"
	KindSuperDimension = "super dimension"
	KindObject         = "object"
)

// ReferenceError identifies the first reference that did not resolve.
// Index is zero-based within Source, in the source's iteration order.
type ReferenceError struct {
	Source string
	Index  int
	Kind   string
	Value  string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s[%d]: unresolved %s %q", e.Source, e.Index, e.Kind, e.Value)
}

func (e *ReferenceError) Unwrap() error { return ErrUnresolvedReference }

// AccountChecker tests whether an account number is in the chart of accounts.
type AccountChecker interface {
	Exists(number string) bool
}

// DimensionChecker tests whether dimensions and objects are declared.
type DimensionChecker interface {
	HasDimension(n int) bool
	HasObject(ref model.ObjectRef) bool
}

// Options tunes ValidateReferences.
type Options struct {
	// RequireObjects makes every object reference resolve in the object
	// collection, not only its dimension.
	RequireObjects bool
}

// ValidateAccounts checks that every item references a known account.
func ValidateAccounts[T model.AccountRef](source string, items []T, accounts AccountChecker) error {
	for i, item := range items {
		if n := item.AccountNumber(); !accounts.Exists(n) {
			return &ReferenceError{Source: source, Index: i, Kind: KindAccount, Value: n}
		}
	}
	return nil
}

// ValidateObjects checks that every object reference of every item names a
// declared dimension or sub-dimension. With requireObjects the object must
// be declared too. Zero references mean "no object" and are skipped.
func ValidateObjects[T model.ObjectReferrer](source string, items []T, dims DimensionChecker, requireObjects bool) error {
	for i, item := range items {
		for _, ref := range item.ObjectRefs() {
			if ref.IsZero() {
				continue
			}
			if !dims.HasDimension(ref.Dimension) {
				return &ReferenceError{Source: source, Index: i, Kind: KindDimension, Value: strconv.Itoa(ref.Dimension)}
			}
			if requireObjects && !dims.HasObject(ref) {
				return &ReferenceError{Source: source, Index: i, Kind: KindObject, Value: ref.String()}
			}
		}
	}
	return nil
}

// ValidateSubDimensions checks that every sub-dimension hangs under a
// top-level dimension. Sub-dimensions do not nest.
func ValidateSubDimensions(l *model.Ledger) error {
	for i, sd := range l.SubDimensions.All() {
		if !l.Dimensions.Exists(model.DimensionKey(sd.Super)) {
			return &ReferenceError{Source: record.LabelSubDim, Index: i, Kind: KindSuperDimension, Value: strconv.Itoa(sd.Super)}
		}
	}
	return nil
}

// ValidateReferences runs every referential check over l and returns the
// first failure.
func ValidateReferences(l *model.Ledger, opts Options) error {
	if err := ValidateSubDimensions(l); err != nil {
		return err
	}

	// Objects themselves must sit in a declared dimension.
	for i, o := range l.Objects.All() {
		if !l.HasDimension(o.Dimension) {
			return &ReferenceError{Source: record.LabelObject, Index: i, Kind: KindDimension, Value: strconv.Itoa(o.Dimension)}
		}
	}

	checks := []func() error{
		func() error { return ValidateAccounts(record.LabelSRU, l.Classifications.Items(), l.Accounts) },
		func() error { return ValidateAccounts(record.LabelOpening, l.OpeningBalances.Items(), l.Accounts) },
		func() error { return ValidateAccounts(record.LabelClosing, l.ClosingBalances.Items(), l.Accounts) },
		func() error { return ValidateAccounts(record.LabelResult, l.Results.Items(), l.Accounts) },
		func() error { return objectBalances(record.LabelObjOpening, l.ObjectOpeningBalances.Items(), l, opts) },
		func() error { return objectBalances(record.LabelObjClosing, l.ObjectClosingBalances.Items(), l, opts) },
		func() error { return objectBalances(record.LabelPeriod, l.PeriodBalances.Items(), l, opts) },
		func() error { return objectBalances(record.LabelBudget, l.PeriodBudgets.Items(), l, opts) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	for _, v := range l.Vouchers.All() {
		source := record.LabelVoucher + " " + v.ID()
		if err := ValidateAccounts(source, v.Lines, l.Accounts); err != nil {
			return err
		}
		if err := ValidateObjects(source, v.Lines, l, opts.RequireObjects); err != nil {
			return err
		}
	}
	return nil
}

type accountObjectRef interface {
	model.AccountRef
	model.ObjectReferrer
}

func objectBalances[T accountObjectRef](source string, items []T, l *model.Ledger, opts Options) error {
	if err := ValidateAccounts(source, items, l.Accounts); err != nil {
		return err
	}
	return ValidateObjects(source, items, l, opts.RequireObjects)
}
