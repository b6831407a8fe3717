package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/model"
)

func TestBalance(t *testing.T) {
	sum, ok := Balance([]model.Transaction{line("1910", "100.00"), line("2640", "-40.00"), line("6250", "-60.00")})
	assert.True(t, ok)
	assert.True(t, sum.IsZero())

	sum, ok = Balance([]model.Transaction{line("1910", "100.00"), line("2640", "-40.00")})
	assert.False(t, ok)
	assert.Equal(t, "60.00", sum.StringFixed(2))
}

func TestBalance_RoundsAfterSumming(t *testing.T) {
	// Each line rounds to 0.00 on its own but the total does not.
	lines := []model.Transaction{line("1", "0.004"), line("2", "0.004"), line("3", "0.004")}
	sum, ok := Balance(lines)
	assert.False(t, ok)
	assert.Equal(t, "0.01", sum.StringFixed(2))

	sum, ok = Balance([]model.Transaction{line("1", "10.001"), line("2", "-10.00")})
	assert.True(t, ok, "sum %s", sum)
}

func TestBalance_IgnoresCorrections(t *testing.T) {
	removed := line("1910", "500.00")
	removed.Kind = model.TransRemoved
	added := line("1930", "-500.00")
	added.Kind = model.TransAdded

	_, ok := Balance([]model.Transaction{line("1910", "10"), line("2640", "-10"), removed, added})
	assert.True(t, ok)
}

func TestBalance_Empty(t *testing.T) {
	sum, ok := Balance(nil)
	assert.True(t, ok)
	assert.True(t, sum.IsZero())
}

func TestCheckVouchers(t *testing.T) {
	l := newLedger(t)
	require.NoError(t, l.Vouchers.Insert(voucher("A", "10", line("1910", "5"))))
	require.NoError(t, l.Vouchers.Insert(voucher("A", "9", line("1910", "5"), line("2640", "-5"))))
	require.NoError(t, l.Vouchers.Insert(voucher("A", "2", line("1910", "-1"))))
	require.NoError(t, l.Vouchers.Insert(voucher("B", "1")))

	unbalanced := CheckVouchers(l)
	require.Len(t, unbalanced, 2)
	assert.Equal(t, "2", unbalanced[0].Number, "natural voucher order")
	assert.Equal(t, "10", unbalanced[1].Number)
	assert.ErrorIs(t, unbalanced[0], ErrUnbalanced)
	assert.Equal(t, "voucher A 2: lines sum to -1.00", unbalanced[0].Error())

	degenerate := Degenerate(l)
	require.Len(t, degenerate, 1)
	assert.Equal(t, "B", degenerate[0].Series)
}
