package sie

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/sie/internal/collection"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/record"
	"github.com/cleared-dev/sie/internal/scalar"
	"github.com/cleared-dev/sie/internal/textutil"
)

// blockIndent prefixes transaction lines inside a voucher block.
const blockIndent = "   "

// ErrUnwritable is returned for a value SIE syntax cannot carry, so that
// reading the output back would fail or split it differently.
var ErrUnwritable = errors.New("value cannot be written")

// lineWriter keeps the first write error so callers can emit many lines
// and check once.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := lw.w.WriteString(s); err != nil {
		lw.err = err
		return
	}
	lw.err = lw.w.WriteByte('\n')
}

func (lw *lineWriter) post(label string, fields []post.Field) {
	lw.line(post.FormatFields(label, fields))
}

func (lw *lineWriter) text(label, value string) {
	if value != "" {
		lw.line(post.Format(label, value))
	}
}

func each[T any](lw *lineWriter, label string, c *collection.Collection[T], toFields func(T) []post.Field) {
	for _, item := range c.All() {
		lw.post(label, toFields(item))
	}
}

// Write serializes l to w in enc. Headers come first, then the chart,
// dimensions, balances and vouchers.
func Write(w io.Writer, l *model.Ledger, enc textutil.Encoding) error {
	if err := checkWritable(l); err != nil {
		return fmt.Errorf("writing SIE output: %w", err)
	}

	ew := enc.Writer(w)
	lw := &lineWriter{w: bufio.NewWriter(ew)}

	writeHeader(lw, l, enc)
	writeChart(lw, l)
	writeBalances(lw, l)
	writeVouchers(lw, l)

	if lw.err == nil {
		lw.err = lw.w.Flush()
	}
	if err := ew.Close(); lw.err == nil {
		lw.err = err
	}
	if lw.err != nil {
		return fmt.Errorf("writing SIE output: %w", lw.err)
	}
	return nil
}

// WriteString serializes l as UTF-8 text.
func WriteString(l *model.Ledger) (string, error) {
	var b strings.Builder
	if err := Write(&b, l, textutil.UTF8); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeHeader(lw *lineWriter, l *model.Ledger, enc textutil.Encoding) {
	lw.line(post.Format(record.LabelFlag, strconv.Itoa(l.Flag)))
	if l.Program != (model.Program{}) {
		lw.line(post.Format(record.LabelProgram, l.Program.Name, l.Program.Version))
	}
	format := l.Format
	if format == "" && enc == textutil.CP437 {
		format = "PC8"
	}
	lw.text(record.LabelFormat, format)
	if !l.Generated.Date.IsZero() {
		lw.line(post.Format(record.LabelGenerated, scalar.FormatDate(l.Generated.Date), l.Generated.Signature))
	}
	if l.SieType != 0 {
		lw.line(post.Format(record.LabelSieType, strconv.Itoa(l.SieType)))
	}
	lw.text(record.LabelProsa, l.Prosa)
	lw.text(record.LabelCompanyType, l.CompanyType)
	lw.text(record.LabelCompanyID, l.CompanyID)
	if l.OrgNumber != (model.OrgNumber{}) {
		lw.line(post.Format(record.LabelOrgNumber, l.OrgNumber.Number, l.OrgNumber.Acquisition, l.OrgNumber.Activity))
	}
	lw.text(record.LabelIndustry, l.IndustryCode)
	if l.Address != (model.Address{}) {
		a := l.Address
		lw.line(post.Format(record.LabelAddress, a.Contact, a.Street, a.Postal, a.Phone))
	}
	lw.text(record.LabelCompany, l.CompanyName)
	for _, fy := range l.FiscalYears {
		lw.post(record.LabelFiscalYear, record.FiscalYearToFields(fy))
	}
	if l.TaxYear != 0 {
		lw.line(post.Format(record.LabelTaxYear, strconv.Itoa(l.TaxYear)))
	}
	if !l.BalanceDate.IsZero() {
		lw.line(post.Format(record.LabelBalanceDate, scalar.FormatDate(l.BalanceDate)))
	}
	lw.text(record.LabelChartType, l.ChartType)
	lw.text(record.LabelCurrency, l.Currency)
}

func writeChart(lw *lineWriter, l *model.Ledger) {
	accounts := l.Accounts.Items()
	for _, a := range accounts {
		lw.post(record.LabelAccount, record.AccountToFields(a))
	}
	for _, a := range accounts {
		if a.Type != "" {
			lw.post(record.LabelAccountType, record.AccountTypeToFields(a))
		}
	}
	for _, a := range accounts {
		if a.Unit != "" {
			lw.post(record.LabelUnit, record.UnitToFields(a))
		}
	}
	each(lw, record.LabelSRU, l.Classifications, record.ClassificationToFields)
	each(lw, record.LabelDimension, l.Dimensions, record.DimensionToFields)
	each(lw, record.LabelSubDim, l.SubDimensions, record.SubDimensionToFields)
	each(lw, record.LabelObject, l.Objects, record.ObjectToFields)
}

func writeBalances(lw *lineWriter, l *model.Ledger) {
	each(lw, record.LabelOpening, l.OpeningBalances, record.BalanceToFields)
	each(lw, record.LabelClosing, l.ClosingBalances, record.BalanceToFields)
	each(lw, record.LabelObjOpening, l.ObjectOpeningBalances, record.ObjectBalanceToFields)
	each(lw, record.LabelObjClosing, l.ObjectClosingBalances, record.ObjectBalanceToFields)
	each(lw, record.LabelResult, l.Results, record.BalanceToFields)
	each(lw, record.LabelPeriod, l.PeriodBalances, record.PeriodAmountToFields)
	each(lw, record.LabelBudget, l.PeriodBudgets, record.PeriodAmountToFields)
}

func writeVouchers(lw *lineWriter, l *model.Ledger) {
	for _, v := range l.Vouchers.All() {
		lw.post(record.LabelVoucher, record.VoucherToFields(v))
		lw.line("{")
		for _, t := range v.Lines {
			lw.line(blockIndent + post.FormatFields(record.TransactionLabel(t), record.TransactionToFields(t)))
		}
		lw.line("}")
	}
}

// checkWritable rejects vouchers without a date and object numbers holding
// "}", which would end the enclosing object list early.
func checkWritable(l *model.Ledger) error {
	for _, b := range l.ObjectOpeningBalances.Items() {
		if err := checkObjects(record.LabelObjOpening, b.Object); err != nil {
			return err
		}
	}
	for _, b := range l.ObjectClosingBalances.Items() {
		if err := checkObjects(record.LabelObjClosing, b.Object); err != nil {
			return err
		}
	}
	for _, p := range l.PeriodBalances.Items() {
		if err := checkObjects(record.LabelPeriod, p.Object); err != nil {
			return err
		}
	}
	for _, p := range l.PeriodBudgets.Items() {
		if err := checkObjects(record.LabelBudget, p.Object); err != nil {
			return err
		}
	}
	for _, v := range l.Vouchers.All() {
		if v.Date.IsZero() {
			return fmt.Errorf("%s %s: missing date: %w", record.LabelVoucher, v.ID(), ErrUnwritable)
		}
		for _, t := range v.Lines {
			if err := checkObjects(record.LabelVoucher+" "+v.ID(), t.Objects...); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkObjects(source string, refs ...model.ObjectRef) error {
	for _, r := range refs {
		if strings.ContainsRune(r.Object, '}') {
			return fmt.Errorf("%s: object %s: %w", source, r, ErrUnwritable)
		}
	}
	return nil
}
