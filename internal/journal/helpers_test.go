package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func line(account, amount string) model.Transaction {
	return model.Transaction{Kind: model.TransRegular, Account: account, Amount: dec(amount)}
}

func voucher(series, number string, lines ...model.Transaction) model.Voucher {
	return model.Voucher{Series: series, Number: number, Date: date(2025, 1, 5), Lines: lines}
}

// newLedger returns a ledger with the given accounts, dimension 1 and its
// object "100".
func newLedger(t *testing.T, accounts ...string) *model.Ledger {
	t.Helper()
	l := model.New()
	for _, a := range accounts {
		require.NoError(t, l.Accounts.Insert(model.Account{Number: a, Name: "Konto " + a}))
	}
	require.NoError(t, l.Dimensions.Insert(model.Dimension{Number: 1, Name: "Kostnadsställe"}))
	require.NoError(t, l.Objects.Insert(model.Object{Dimension: 1, Number: "100", Name: "Försäljning"}))
	return l
}
