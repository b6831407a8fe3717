package journal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie/internal/model"
)

// ErrUnbalanced is the sentinel every UnbalancedError matches.
var ErrUnbalanced = errors.New("unbalanced voucher")

// UnbalancedError reports a voucher whose lines do not net to zero.
type UnbalancedError struct {
	Series string
	Number string
	Sum    decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("voucher %s: lines sum to %s", model.Voucher{Series: e.Series, Number: e.Number}.ID(), e.Sum.StringFixed(2))
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }

// Balance sums the regular lines and rounds to two decimals after summing.
// Removed and added correction lines do not count.
func Balance(lines []model.Transaction) (sum decimal.Decimal, ok bool) {
	sum = decimal.Zero
	for _, t := range lines {
		if t.Kind != model.TransRegular {
			continue
		}
		sum = sum.Add(t.Amount)
	}
	sum = sum.Round(2)
	return sum, sum.IsZero()
}

// CheckVoucher returns an UnbalancedError if v does not balance.
func CheckVoucher(v model.Voucher) error {
	if sum, ok := Balance(v.Lines); !ok {
		return &UnbalancedError{Series: v.Series, Number: v.Number, Sum: sum}
	}
	return nil
}

// CheckVouchers returns every unbalanced voucher of l in voucher order.
func CheckVouchers(l *model.Ledger) []*UnbalancedError {
	var out []*UnbalancedError
	for cur := l.Vouchers.Cursor(); !cur.AtEnd(); cur.Next() {
		v, _ := cur.Current()
		var ue *UnbalancedError
		if errors.As(CheckVoucher(v), &ue) {
			out = append(out, ue)
		}
	}
	return out
}

// Degenerate returns the vouchers that have no lines. They balance
// trivially.
func Degenerate(l *model.Ledger) []model.Voucher {
	var out []model.Voucher
	for _, v := range l.Vouchers.All() {
		if len(v.Lines) == 0 {
			out = append(out, v)
		}
	}
	return out
}
