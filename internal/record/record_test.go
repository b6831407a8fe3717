package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/scalar"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// resplit formats fields and tokenizes them again, as a file round trip does.
func resplit(t *testing.T, label string, fields []post.Field) []string {
	t.Helper()
	got, values := post.Split(post.FormatFields(label, fields))
	require.Equal(t, label, got)
	return values
}

func TestAccount(t *testing.T) {
	a, err := AccountFromFields([]string{"1910", "Kassa"})
	require.NoError(t, err)
	assert.Equal(t, model.Account{Number: "1910", Name: "Kassa"}, a)

	got, err := AccountFromFields(resplit(t, LabelAccount, AccountToFields(a)))
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = AccountFromFields(nil)
	assert.ErrorIs(t, err, ErrTooFewFields)
}

func TestAccountType(t *testing.T) {
	num, typ, err := AccountTypeFromFields([]string{"1910", "T"})
	require.NoError(t, err)
	assert.Equal(t, "1910", num)
	assert.Equal(t, model.AccountTypeAsset, typ)

	_, _, err = AccountTypeFromFields([]string{"1910", "X"})
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestClassification(t *testing.T) {
	c, err := ClassificationFromFields([]string{"1910", "7281"})
	require.NoError(t, err)
	assert.Equal(t, 7281, c.Code)

	_, err = ClassificationFromFields([]string{"1910", "x"})
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestDimensions(t *testing.T) {
	d, err := DimensionFromFields([]string{"1", "Kostnadsställe"})
	require.NoError(t, err)
	assert.Equal(t, model.Dimension{Number: 1, Name: "Kostnadsställe"}, d)

	sub, err := SubDimensionFromFields([]string{"21", "Avdelning", "1"})
	require.NoError(t, err)
	assert.Equal(t, model.SubDimension{Number: 21, Super: 1, Name: "Avdelning"}, sub)

	got, err := SubDimensionFromFields(resplit(t, LabelSubDim, SubDimensionToFields(sub)))
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	o, err := ObjectFromFields([]string{"1", "100", "Stockholm"})
	require.NoError(t, err)
	assert.Equal(t, model.ObjectRef{Dimension: 1, Object: "100"}, o.Ref())

	_, err = DimensionFromFields([]string{"one"})
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestBalance(t *testing.T) {
	b, err := BalanceFromFields(LabelOpening, []string{"0", "1910", "1500.50"})
	require.NoError(t, err)
	assert.Equal(t, 0, b.YearOffset)
	assert.True(t, b.Amount.Equal(dec("1500.50")))
	assert.False(t, b.Quantity.Valid)

	line := post.FormatFields(LabelOpening, BalanceToFields(b))
	assert.Equal(t, `#IB "0" "1910" "1500.50"`, line, "absent quantity is trimmed")

	b, err = BalanceFromFields(LabelClosing, []string{"-1", "1910", "0", "12"})
	require.NoError(t, err)
	assert.Equal(t, -1, b.YearOffset)
	assert.True(t, b.Quantity.Valid)

	_, err = BalanceFromFields(LabelResult, []string{"0", "3010", "abc"})
	var me *scalar.MalformedError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "#RES amount", me.Field)
}

func TestObjectBalance(t *testing.T) {
	_, fields := post.Split(`#OIB 0 3010 {1 "100"} -500.00 3`)
	b, err := ObjectBalanceFromFields(LabelObjOpening, fields)
	require.NoError(t, err)
	assert.Equal(t, model.ObjectRef{Dimension: 1, Object: "100"}, b.Object)
	assert.True(t, b.Amount.Equal(dec("-500")))

	line := post.FormatFields(LabelObjOpening, ObjectBalanceToFields(b))
	assert.Equal(t, `#OIB "0" "3010" {1 "100"} "-500.00" "3"`, line)

	_, fields = post.Split(`#OIB 0 3010 {1 "100" 6 "P1"} -500.00`)
	_, err = ObjectBalanceFromFields(LabelObjOpening, fields)
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestPeriodAmount(t *testing.T) {
	_, fields := post.Split(`#PSALDO 0 202501 3010 {} -1200.00`)
	p, err := PeriodAmountFromFields(LabelPeriod, fields)
	require.NoError(t, err)
	assert.Equal(t, "202501", p.Period)
	assert.True(t, p.Object.IsZero())
	assert.Empty(t, p.ObjectRefs())

	got, err := PeriodAmountFromFields(LabelPeriod, resplit(t, LabelPeriod, PeriodAmountToFields(p)))
	require.NoError(t, err)
	assert.Equal(t, p.Period, got.Period)
	assert.True(t, p.Amount.Equal(got.Amount))

	_, fields = post.Split(`#PBUDGET 0 2025 3010 {} 1`)
	_, err = PeriodAmountFromFields(LabelBudget, fields)
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestFiscalYear(t *testing.T) {
	fy, err := FiscalYearFromFields([]string{"0", "20250101", "20251231"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), fy.End)

	_, err = FiscalYearFromFields([]string{"0", "20250101"})
	assert.ErrorIs(t, err, ErrTooFewFields)
}

func TestVoucher(t *testing.T) {
	v, err := VoucherFromFields([]string{"A", "1", "20250105", "Kontantköp"})
	require.NoError(t, err)
	assert.Equal(t, "A", v.Series)
	assert.Equal(t, "1", v.Number)
	assert.True(t, v.RegDate.IsZero())

	line := post.FormatFields(LabelVoucher, VoucherToFields(v))
	assert.Equal(t, `#VER "A" "1" "20250105" "Kontantköp"`, line)

	_, err = VoucherFromFields([]string{"A", "1", "2025-01-05"})
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestTransaction(t *testing.T) {
	_, fields := post.Split(`#TRANS 6250 {1 "100" 6 "P 1"} 1600.00 20250105 "Porto" 2`)
	tr, err := TransactionFromFields(LabelTrans, fields)
	require.NoError(t, err)
	assert.Equal(t, model.TransRegular, tr.Kind)
	assert.Equal(t, []model.ObjectRef{{Dimension: 1, Object: "100"}, {Dimension: 6, Object: "P 1"}}, tr.Objects)
	assert.Equal(t, "Porto", tr.Text)
	assert.True(t, tr.Quantity.Valid)

	label := TransactionLabel(tr)
	got, err := TransactionFromFields(label, resplit(t, label, TransactionToFields(tr)))
	require.NoError(t, err)
	assert.Equal(t, tr.Objects, got.Objects)
	assert.True(t, tr.Amount.Equal(got.Amount))
	assert.Equal(t, tr.Date, got.Date)
	assert.Equal(t, tr.Text, got.Text)
}

func TestTransaction_Minimal(t *testing.T) {
	tr := model.Transaction{Kind: model.TransRemoved, Account: "1910", Amount: dec("-2000")}
	line := post.FormatFields(TransactionLabel(tr), TransactionToFields(tr))
	assert.Equal(t, `#RTRANS "1910" {} "-2000.00"`, line)

	label, fields := post.Split(line)
	got, err := TransactionFromFields(label, fields)
	require.NoError(t, err)
	assert.Equal(t, model.TransRemoved, got.Kind)
	assert.Empty(t, got.Objects)
}

func TestParseObjects_Odd(t *testing.T) {
	_, err := ParseObjects(LabelTrans, `1 "100" 6`)
	assert.ErrorIs(t, err, scalar.ErrMalformed)
}

func TestFormatObjects(t *testing.T) {
	assert.Equal(t, post.Bare("{}"), FormatObjects(nil))
	f := FormatObjects([]model.ObjectRef{{Dimension: 1, Object: `a "b"`}})
	assert.Equal(t, `{1 "a \"b\""}`, f.Value)
}

func TestTransKindOf(t *testing.T) {
	k, ok := TransKindOf("#btrans")
	assert.True(t, ok)
	assert.Equal(t, model.TransAdded, k)
	_, ok = TransKindOf("#VER")
	assert.False(t, ok)
}
