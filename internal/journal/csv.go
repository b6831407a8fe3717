package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/record"
	"github.com/cleared-dev/sie/internal/scalar"
)

// Header is the CSV header written by WriteLines.
const Header = "series,number,date,voucher_text,kind,account,objects,amount,trans_date,text,quantity,signature"

const (
	numFields    = 12
	colSeries    = 0
	colNumber    = 1
	colDate      = 2
	colVerText   = 3
	colKind      = 4
	colAccount   = 5
	colObjects   = 6
	colAmount    = 7
	colTransDate = 8
	colText      = 9
	colQuantity  = 10
	colSign      = 11
)

// WriteLines writes one CSV row per voucher line, header first, vouchers in
// ledger order.
func WriteLines(w io.Writer, vouchers []model.Voucher) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, v := range vouchers {
		for _, t := range v.Lines {
			if err := cw.Write(MarshalLine(v, t)); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLine converts one line of v to a CSV row.
func MarshalLine(v model.Voucher, t model.Transaction) []string {
	row := make([]string, numFields)
	row[colSeries] = v.Series
	row[colNumber] = v.Number
	row[colDate] = scalar.FormatDate(v.Date)
	row[colVerText] = v.Text
	row[colKind] = string(t.Kind)
	row[colAccount] = t.Account
	objects := record.FormatObjects(t.Objects).Value
	row[colObjects] = strings.TrimSuffix(strings.TrimPrefix(objects, "{"), "}")
	row[colAmount] = scalar.FormatAmount(t.Amount)
	row[colTransDate] = scalar.FormatDate(t.Date)
	row[colText] = t.Text
	row[colQuantity] = scalar.FormatQuantity(t.Quantity)
	row[colSign] = t.Signature
	return row
}

// ReadLines reads rows written by WriteLines back into vouchers. Consecutive
// rows with the same series and number form one voucher.
func ReadLines(r io.Reader) ([]model.Voucher, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading voucher CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var vouchers []model.Voucher
	unnumbered := make(map[string]int)
	for i, rec := range records[1:] {
		v, t, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if n := len(vouchers); n > 0 && sameVoucher(vouchers[n-1], v) {
			vouchers[n-1].Lines = append(vouchers[n-1].Lines, t)
			continue
		}
		if v.Number == "" {
			unnumbered[v.Series]++
			v.Seq = unnumbered[v.Series]
		}
		v.Lines = []model.Transaction{t}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

// UnmarshalLine converts a CSV row to its voucher header and line.
func UnmarshalLine(rec []string) (model.Voucher, model.Transaction, error) {
	if len(rec) != numFields {
		return model.Voucher{}, model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	date, err := scalar.Date("date", rec[colDate])
	if err != nil {
		return model.Voucher{}, model.Transaction{}, err
	}
	kind := model.TransKind(rec[colKind])
	if _, ok := record.TransKindOf("#" + rec[colKind]); !ok {
		return model.Voucher{}, model.Transaction{}, &scalar.MalformedError{Field: "kind", Kind: "transaction kind", Value: rec[colKind]}
	}
	objects, err := record.ParseObjects(record.LabelTrans, rec[colObjects])
	if err != nil {
		return model.Voucher{}, model.Transaction{}, err
	}
	amount, err := scalar.Decimal("amount", rec[colAmount])
	if err != nil {
		return model.Voucher{}, model.Transaction{}, err
	}
	transDate, err := scalar.OptionalDate("trans_date", rec[colTransDate])
	if err != nil {
		return model.Voucher{}, model.Transaction{}, err
	}
	qty, err := scalar.OptionalDecimal("quantity", rec[colQuantity])
	if err != nil {
		return model.Voucher{}, model.Transaction{}, err
	}

	v := model.Voucher{
		Series: rec[colSeries],
		Number: rec[colNumber],
		Date:   date,
		Text:   rec[colVerText],
	}
	t := model.Transaction{
		Kind:      kind,
		Account:   rec[colAccount],
		Objects:   objects,
		Amount:    amount,
		Date:      transDate,
		Text:      rec[colText],
		Quantity:  qty,
		Signature: rec[colSign],
	}
	return v, t, nil
}

// sameVoucher reports whether row header b continues voucher a. Unnumbered
// rows also have to agree on date and text.
func sameVoucher(a, b model.Voucher) bool {
	if a.Series != b.Series || a.Number != b.Number {
		return false
	}
	return a.Number != "" || (a.Date.Equal(b.Date) && a.Text == b.Text)
}
