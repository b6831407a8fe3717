package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/model"
)

func TestValidateReferences_Valid(t *testing.T) {
	l := newLedger(t, "1910", "2640", "6250")
	require.NoError(t, l.SubDimensions.Insert(model.SubDimension{Number: 21, Super: 1, Name: "Delprojekt"}))
	require.NoError(t, l.OpeningBalances.Insert(model.Balance{Account: "1910", Amount: dec("100")}))
	require.NoError(t, l.PeriodBalances.Insert(model.PeriodAmount{Account: "6250", Period: "202501", Amount: dec("5")}))
	require.NoError(t, l.ObjectClosingBalances.Insert(model.ObjectBalance{
		Account: "6250",
		Object:  model.ObjectRef{Dimension: 1, Object: "100"},
		Amount:  dec("5"),
	}))
	tr := line("6250", "1600.00")
	tr.Objects = []model.ObjectRef{{Dimension: 1, Object: "100"}}
	require.NoError(t, l.Vouchers.Insert(voucher("A", "1", line("1910", "-1600.00"), tr)))

	assert.NoError(t, ValidateReferences(l, Options{RequireObjects: true}))
}

func TestValidateAccounts_Unresolved(t *testing.T) {
	l := model.New()
	for _, a := range []string{"1000", "1500", "2000"} {
		require.NoError(t, l.Accounts.Insert(model.Account{Number: a}))
	}
	lines := []model.Transaction{line("1000", "10"), line("9999", "-10")}

	err := ValidateAccounts("#VER A 1", lines, l.Accounts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedReference)

	var re *ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, "9999", re.Value)
	assert.Equal(t, KindAccount, re.Kind)
}

func TestValidateReferences_FirstFailureWins(t *testing.T) {
	l := newLedger(t, "1910")
	require.NoError(t, l.Vouchers.Insert(voucher("A", "1", line("1910", "0"), line("8000", "0"))))
	require.NoError(t, l.Vouchers.Insert(voucher("A", "2", line("7000", "0"))))

	var re *ReferenceError
	require.ErrorAs(t, ValidateReferences(l, Options{}), &re)
	assert.Equal(t, "#VER A 1", re.Source)
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, "8000", re.Value)
}

func TestValidateReferences_Balances(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(l *model.Ledger) error
		source string
	}{
		{"opening", func(l *model.Ledger) error {
			return l.OpeningBalances.Insert(model.Balance{Account: "3000"})
		}, "#IB"},
		{"result", func(l *model.Ledger) error {
			return l.Results.Insert(model.Balance{Account: "3000"})
		}, "#RES"},
		{"sru", func(l *model.Ledger) error {
			return l.Classifications.Insert(model.ClassificationCode{Account: "3000", Code: 7410})
		}, "#SRU"},
		{"budget", func(l *model.Ledger) error {
			return l.PeriodBudgets.Insert(model.PeriodAmount{Account: "3000", Period: "202501"})
		}, "#PBUDGET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(t, "1910")
			require.NoError(t, tt.setup(l))

			var re *ReferenceError
			require.ErrorAs(t, ValidateReferences(l, Options{}), &re)
			assert.Equal(t, tt.source, re.Source)
			assert.Equal(t, "3000", re.Value)
			assert.Equal(t, 0, re.Index)
		})
	}
}

func TestValidateObjects(t *testing.T) {
	l := newLedger(t, "6250")
	require.NoError(t, l.SubDimensions.Insert(model.SubDimension{Number: 21, Super: 1}))

	sub := line("6250", "1")
	sub.Objects = []model.ObjectRef{{Dimension: 21, Object: "X"}}
	assert.NoError(t, ValidateObjects("t", []model.Transaction{sub}, l, false), "sub-dimension resolves")

	err := ValidateObjects("t", []model.Transaction{sub}, l, true)
	var re *ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindObject, re.Kind)
	assert.Equal(t, "21 X", re.Value)

	unknown := line("6250", "1")
	unknown.Objects = []model.ObjectRef{{Dimension: 1, Object: "100"}, {Dimension: 6, Object: "P1"}}
	require.ErrorAs(t, ValidateObjects("t", []model.Transaction{sub, unknown}, l, false), &re)
	assert.Equal(t, KindDimension, re.Kind)
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, "6", re.Value)
}

func TestValidateSubDimensions_NoNesting(t *testing.T) {
	l := newLedger(t)
	require.NoError(t, l.SubDimensions.Insert(model.SubDimension{Number: 21, Super: 1}))
	require.NoError(t, l.SubDimensions.Insert(model.SubDimension{Number: 22, Super: 21}))

	var re *ReferenceError
	require.ErrorAs(t, ValidateSubDimensions(l), &re)
	assert.Equal(t, KindSuperDimension, re.Kind)
	assert.Equal(t, "21", re.Value)
}

func TestValidateReferences_ObjectInUnknownDimension(t *testing.T) {
	l := newLedger(t)
	require.NoError(t, l.Objects.Insert(model.Object{Dimension: 7, Number: "1"}))

	var re *ReferenceError
	require.ErrorAs(t, ValidateReferences(l, Options{}), &re)
	assert.Equal(t, "#OBJEKT", re.Source)
	assert.Equal(t, "7", re.Value)
}
