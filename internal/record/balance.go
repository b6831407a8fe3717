package record

import (
	"strconv"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/scalar"
)

// #IB / #UB / #RES offset account amount [quantity]
const (
	colBalYear     = 0
	colBalAccount  = 1
	colBalAmount   = 2
	colBalQuantity = 3
)

// BalanceFromFields maps #IB, #UB and #RES fields.
func BalanceFromFields(label string, fields []string) (model.Balance, error) {
	if err := need(label, fields, 3); err != nil {
		return model.Balance{}, err
	}
	year, err := scalar.Int(name(label, "year"), fields[colBalYear])
	if err != nil {
		return model.Balance{}, err
	}
	amount, err := scalar.Decimal(name(label, "amount"), fields[colBalAmount])
	if err != nil {
		return model.Balance{}, err
	}
	qty, err := scalar.OptionalDecimal(name(label, "quantity"), at(fields, colBalQuantity))
	if err != nil {
		return model.Balance{}, err
	}
	return model.Balance{
		YearOffset: year,
		Account:    fields[colBalAccount],
		Amount:     amount,
		Quantity:   qty,
	}, nil
}

// BalanceToFields maps a balance to #IB, #UB or #RES fields.
func BalanceToFields(b model.Balance) []post.Field {
	return post.Strings(
		strconv.Itoa(b.YearOffset),
		b.Account,
		scalar.FormatAmount(b.Amount),
		scalar.FormatQuantity(b.Quantity),
	)
}

// #OIB / #OUB offset account {dim object} amount [quantity]
const (
	colObjYear     = 0
	colObjAccount  = 1
	colObjObjects  = 2
	colObjAmount   = 3
	colObjQuantity = 4
)

// ObjectBalanceFromFields maps #OIB and #OUB fields.
func ObjectBalanceFromFields(label string, fields []string) (model.ObjectBalance, error) {
	if err := need(label, fields, 4); err != nil {
		return model.ObjectBalance{}, err
	}
	year, err := scalar.Int(name(label, "year"), fields[colObjYear])
	if err != nil {
		return model.ObjectBalance{}, err
	}
	ref, err := parseObject(label, fields[colObjObjects])
	if err != nil {
		return model.ObjectBalance{}, err
	}
	amount, err := scalar.Decimal(name(label, "amount"), fields[colObjAmount])
	if err != nil {
		return model.ObjectBalance{}, err
	}
	qty, err := scalar.OptionalDecimal(name(label, "quantity"), at(fields, colObjQuantity))
	if err != nil {
		return model.ObjectBalance{}, err
	}
	return model.ObjectBalance{
		YearOffset: year,
		Account:    fields[colObjAccount],
		Object:     ref,
		Amount:     amount,
		Quantity:   qty,
	}, nil
}

// ObjectBalanceToFields maps an object balance to #OIB or #OUB fields.
func ObjectBalanceToFields(b model.ObjectBalance) []post.Field {
	return []post.Field{
		post.Quoted(strconv.Itoa(b.YearOffset)),
		post.Quoted(b.Account),
		formatObject(b.Object),
		post.Quoted(scalar.FormatAmount(b.Amount)),
		post.Quoted(scalar.FormatQuantity(b.Quantity)),
	}
}

// #PSALDO / #PBUDGET offset period account {dim object} amount [quantity]
const (
	colPerYear     = 0
	colPerPeriod   = 1
	colPerAccount  = 2
	colPerObjects  = 3
	colPerAmount   = 4
	colPerQuantity = 5
)

// PeriodAmountFromFields maps #PSALDO and #PBUDGET fields.
func PeriodAmountFromFields(label string, fields []string) (model.PeriodAmount, error) {
	if err := need(label, fields, 5); err != nil {
		return model.PeriodAmount{}, err
	}
	year, err := scalar.Int(name(label, "year"), fields[colPerYear])
	if err != nil {
		return model.PeriodAmount{}, err
	}
	period, err := scalar.Period(name(label, "period"), fields[colPerPeriod])
	if err != nil {
		return model.PeriodAmount{}, err
	}
	ref, err := parseObject(label, fields[colPerObjects])
	if err != nil {
		return model.PeriodAmount{}, err
	}
	amount, err := scalar.Decimal(name(label, "amount"), fields[colPerAmount])
	if err != nil {
		return model.PeriodAmount{}, err
	}
	qty, err := scalar.OptionalDecimal(name(label, "quantity"), at(fields, colPerQuantity))
	if err != nil {
		return model.PeriodAmount{}, err
	}
	return model.PeriodAmount{
		YearOffset: year,
		Period:     period,
		Account:    fields[colPerAccount],
		Object:     ref,
		Amount:     amount,
		Quantity:   qty,
	}, nil
}

// PeriodAmountToFields maps a period amount to #PSALDO or #PBUDGET fields.
func PeriodAmountToFields(p model.PeriodAmount) []post.Field {
	return []post.Field{
		post.Quoted(strconv.Itoa(p.YearOffset)),
		post.Quoted(p.Period),
		post.Quoted(p.Account),
		formatObject(p.Object),
		post.Quoted(scalar.FormatAmount(p.Amount)),
		post.Quoted(scalar.FormatQuantity(p.Quantity)),
	}
}

// FiscalYearFromFields maps #RAR fields: offset start end.
func FiscalYearFromFields(fields []string) (model.FiscalYear, error) {
	if err := need(LabelFiscalYear, fields, 3); err != nil {
		return model.FiscalYear{}, err
	}
	offset, err := scalar.Int(name(LabelFiscalYear, "year"), fields[0])
	if err != nil {
		return model.FiscalYear{}, err
	}
	start, err := scalar.Date(name(LabelFiscalYear, "start"), fields[1])
	if err != nil {
		return model.FiscalYear{}, err
	}
	end, err := scalar.Date(name(LabelFiscalYear, "end"), fields[2])
	if err != nil {
		return model.FiscalYear{}, err
	}
	return model.FiscalYear{Offset: offset, Start: start, End: end}, nil
}

// FiscalYearToFields maps a fiscal year to #RAR fields.
func FiscalYearToFields(fy model.FiscalYear) []post.Field {
	return post.Strings(strconv.Itoa(fy.Offset), scalar.FormatDate(fy.Start), scalar.FormatDate(fy.End))
}
