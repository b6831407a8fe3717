package record

import (
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/scalar"
)

// #VER series number date [text] [regdate] [sign]
const (
	colVerSeries  = 0
	colVerNumber  = 1
	colVerDate    = 2
	colVerText    = 3
	colVerRegDate = 4
	colVerSign    = 5
)

// VoucherFromFields maps #VER fields. Lines are added by the caller from
// the following block.
func VoucherFromFields(fields []string) (model.Voucher, error) {
	if err := need(LabelVoucher, fields, 3); err != nil {
		return model.Voucher{}, err
	}
	date, err := scalar.Date(name(LabelVoucher, "date"), fields[colVerDate])
	if err != nil {
		return model.Voucher{}, err
	}
	reg, err := scalar.OptionalDate(name(LabelVoucher, "registration date"), at(fields, colVerRegDate))
	if err != nil {
		return model.Voucher{}, err
	}
	return model.Voucher{
		Series:    fields[colVerSeries],
		Number:    fields[colVerNumber],
		Date:      date,
		Text:      at(fields, colVerText),
		RegDate:   reg,
		Signature: at(fields, colVerSign),
	}, nil
}

// VoucherToFields maps a voucher header to #VER fields.
func VoucherToFields(v model.Voucher) []post.Field {
	return post.Strings(
		v.Series,
		v.Number,
		scalar.FormatDate(v.Date),
		v.Text,
		scalar.FormatDate(v.RegDate),
		v.Signature,
	)
}

// #TRANS account {objects} amount [date] [text] [quantity] [sign]
const (
	colTransAccount  = 0
	colTransObjects  = 1
	colTransAmount   = 2
	colTransDate     = 3
	colTransText     = 4
	colTransQuantity = 5
	colTransSign     = 6
)

// TransKindOf returns the kind for a #TRANS, #RTRANS or #BTRANS label.
func TransKindOf(label string) (model.TransKind, bool) {
	switch NormalizeLabel(label) {
	case LabelTrans:
		return model.TransRegular, true
	case LabelRTrans:
		return model.TransRemoved, true
	case LabelBTrans:
		return model.TransAdded, true
	}
	return "", false
}

// TransactionFromFields maps #TRANS, #RTRANS and #BTRANS fields.
func TransactionFromFields(label string, fields []string) (model.Transaction, error) {
	kind, ok := TransKindOf(label)
	if !ok {
		kind = model.TransRegular
	}
	if err := need(label, fields, 3); err != nil {
		return model.Transaction{}, err
	}
	objects, err := ParseObjects(label, fields[colTransObjects])
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := scalar.Decimal(name(label, "amount"), fields[colTransAmount])
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := scalar.OptionalDate(name(label, "date"), at(fields, colTransDate))
	if err != nil {
		return model.Transaction{}, err
	}
	qty, err := scalar.OptionalDecimal(name(label, "quantity"), at(fields, colTransQuantity))
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Kind:      kind,
		Account:   fields[colTransAccount],
		Objects:   objects,
		Amount:    amount,
		Date:      date,
		Text:      at(fields, colTransText),
		Quantity:  qty,
		Signature: at(fields, colTransSign),
	}, nil
}

// TransactionLabel returns the label a line is written with.
func TransactionLabel(t model.Transaction) string {
	switch t.Kind {
	case model.TransRemoved:
		return LabelRTrans
	case model.TransAdded:
		return LabelBTrans
	}
	return LabelTrans
}

// TransactionToFields maps a line to #TRANS fields.
func TransactionToFields(t model.Transaction) []post.Field {
	return []post.Field{
		post.Quoted(t.Account),
		FormatObjects(t.Objects),
		post.Quoted(scalar.FormatAmount(t.Amount)),
		post.Quoted(scalar.FormatDate(t.Date)),
		post.Quoted(t.Text),
		post.Quoted(scalar.FormatQuantity(t.Quantity)),
		post.Quoted(t.Signature),
	}
}
