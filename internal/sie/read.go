// Package sie reads and writes whole SIE documents as model.Ledger values.
package sie

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cleared-dev/sie/internal/collection"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/record"
	"github.com/cleared-dev/sie/internal/scalar"
	"github.com/cleared-dev/sie/internal/textutil"
)

// maxLine bounds the length of a single post.
const maxLine = 1 << 20

var (
	// ErrUnexpectedPost is returned for a post that is not allowed where it
	// appears, such as #TRANS outside a voucher block.
	ErrUnexpectedPost = errors.New("unexpected post")
	// ErrUnterminatedBlock is returned when input ends inside a #VER block.
	ErrUnterminatedBlock = errors.New("unterminated voucher block")
	// ErrInvalidUTF8 is returned for a line that is not valid UTF-8 after
	// decoding, usually a file read with the wrong encoding.
	ErrInvalidUTF8 = errors.New("invalid UTF-8, check the file encoding")
)

// LineError wraps a failure with the 1-based line it occurred on.
type LineError struct {
	Line  int
	Label string
	Err   error
}

func (e *LineError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Label, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// reader holds the voucher being assembled while posts are consumed.
type reader struct {
	ledger  *model.Ledger
	voucher *model.Voucher // #VER seen, block pending or open
	inBlock bool

	unnumbered map[string]int // unnumbered vouchers seen per series
}

// Read parses a whole document from r, decoding it with enc.
func Read(r io.Reader, enc textutil.Encoding) (*model.Ledger, error) {
	sc := bufio.NewScanner(enc.Reader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	rd := &reader{ledger: model.New(), unnumbered: make(map[string]int)}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if !utf8.ValidString(text) {
			return nil, &LineError{Line: lineNo, Err: ErrInvalidUTF8}
		}
		if err := rd.line(text); err != nil {
			var le *LineError
			if errors.As(err, &le) {
				le.Line = lineNo
				return nil, le
			}
			return nil, &LineError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading SIE input: %w", err)
	}
	if rd.inBlock {
		return nil, &LineError{Line: lineNo, Label: record.LabelVoucher, Err: ErrUnterminatedBlock}
	}
	if err := rd.closeVoucher(); err != nil {
		return nil, &LineError{Line: lineNo, Label: record.LabelVoucher, Err: err}
	}
	return rd.ledger, nil
}

// ReadString parses a document already decoded to UTF-8.
func ReadString(s string) (*model.Ledger, error) {
	return Read(strings.NewReader(s), textutil.UTF8)
}

func (rd *reader) line(raw string) error {
	switch strings.TrimSpace(raw) {
	case "":
		return nil
	case "{":
		if rd.voucher == nil || rd.inBlock {
			return &LineError{Err: fmt.Errorf("{: %w", ErrUnexpectedPost)}
		}
		rd.inBlock = true
		return nil
	case "}":
		if !rd.inBlock {
			return &LineError{Err: fmt.Errorf("}: %w", ErrUnexpectedPost)}
		}
		rd.inBlock = false
		return rd.closeVoucher()
	}

	label, fields := post.Split(raw)
	label = record.NormalizeLabel(label)
	if err := rd.post(label, fields); err != nil {
		return &LineError{Label: label, Err: err}
	}
	return nil
}

func (rd *reader) post(label string, fields []string) error {
	if rd.inBlock {
		if _, ok := record.TransKindOf(label); !ok {
			return ErrUnexpectedPost
		}
		tr, err := record.TransactionFromFields(label, fields)
		if err != nil {
			return err
		}
		rd.voucher.Lines = append(rd.voucher.Lines, tr)
		return nil
	}

	// A #VER without a block has no lines.
	if err := rd.closeVoucher(); err != nil {
		return err
	}

	if label == "" {
		return ErrUnexpectedPost
	}
	if handled, err := rd.header(label, fields); handled {
		return err
	}
	return rd.entity(label, fields)
}

func (rd *reader) closeVoucher() error {
	if rd.voucher == nil {
		return nil
	}
	v := *rd.voucher
	rd.voucher = nil
	if v.Number == "" {
		rd.unnumbered[v.Series]++
		v.Seq = rd.unnumbered[v.Series]
	}
	return rd.ledger.Vouchers.Insert(v)
}

// header maps posts that set a scalar attribute of the ledger.
func (rd *reader) header(label string, fields []string) (bool, error) {
	l := rd.ledger
	f := func(i int) string { return field(fields, i) }
	var err error
	switch label {
	case record.LabelFlag:
		l.Flag, err = scalar.Int(label, f(0))
	case record.LabelProgram:
		l.Program = model.Program{Name: f(0), Version: f(1)}
	case record.LabelFormat:
		l.Format = f(0)
	case record.LabelGenerated:
		l.Generated.Signature = f(1)
		l.Generated.Date, err = scalar.Date(label, f(0))
	case record.LabelSieType:
		l.SieType, err = scalar.Int(label, f(0))
	case record.LabelProsa:
		l.Prosa = f(0)
	case record.LabelCompanyType:
		l.CompanyType = f(0)
	case record.LabelCompanyID:
		l.CompanyID = f(0)
	case record.LabelOrgNumber:
		l.OrgNumber = model.OrgNumber{Number: f(0), Acquisition: f(1), Activity: f(2)}
	case record.LabelIndustry:
		l.IndustryCode = f(0)
	case record.LabelAddress:
		l.Address = model.Address{Contact: f(0), Street: f(1), Postal: f(2), Phone: f(3)}
	case record.LabelCompany:
		l.CompanyName = f(0)
	case record.LabelFiscalYear:
		var fy model.FiscalYear
		fy, err = record.FiscalYearFromFields(fields)
		if err == nil {
			l.FiscalYears = append(l.FiscalYears, fy)
		}
	case record.LabelTaxYear:
		l.TaxYear = textutil.ToNumericYear(f(0))
		if l.TaxYear == 0 {
			err = &scalar.MalformedError{Field: label, Kind: "year", Value: f(0)}
		}
	case record.LabelBalanceDate:
		l.BalanceDate, err = scalar.Date(label, f(0))
	case record.LabelChartType:
		l.ChartType = f(0)
	case record.LabelCurrency:
		l.Currency = f(0)
	case record.LabelChecksum:
	default:
		return false, nil
	}
	return true, err
}

// entity maps posts that add or amend an entity in one of the collections.
// Unknown labels are skipped.
func (rd *reader) entity(label string, fields []string) error {
	l := rd.ledger
	switch label {
	case record.LabelAccount:
		return insert(l.Accounts)(record.AccountFromFields(fields))
	case record.LabelAccountType:
		num, typ, err := record.AccountTypeFromFields(fields)
		if err != nil {
			return err
		}
		return l.UpdateAccount(num, func(a *model.Account) { a.Type = typ })
	case record.LabelUnit:
		num, unit, err := record.UnitFromFields(fields)
		if err != nil {
			return err
		}
		return l.UpdateAccount(num, func(a *model.Account) { a.Unit = unit })
	case record.LabelSRU:
		return insert(l.Classifications)(record.ClassificationFromFields(fields))
	case record.LabelDimension:
		return insert(l.Dimensions)(record.DimensionFromFields(fields))
	case record.LabelSubDim:
		return insert(l.SubDimensions)(record.SubDimensionFromFields(fields))
	case record.LabelObject:
		return insert(l.Objects)(record.ObjectFromFields(fields))
	case record.LabelOpening:
		return insert(l.OpeningBalances)(record.BalanceFromFields(label, fields))
	case record.LabelClosing:
		return insert(l.ClosingBalances)(record.BalanceFromFields(label, fields))
	case record.LabelResult:
		return insert(l.Results)(record.BalanceFromFields(label, fields))
	case record.LabelObjOpening:
		return insert(l.ObjectOpeningBalances)(record.ObjectBalanceFromFields(label, fields))
	case record.LabelObjClosing:
		return insert(l.ObjectClosingBalances)(record.ObjectBalanceFromFields(label, fields))
	case record.LabelPeriod:
		return insert(l.PeriodBalances)(record.PeriodAmountFromFields(label, fields))
	case record.LabelBudget:
		return insert(l.PeriodBudgets)(record.PeriodAmountFromFields(label, fields))
	case record.LabelVoucher:
		v, err := record.VoucherFromFields(fields)
		if err != nil {
			return err
		}
		rd.voucher = &v
		return nil
	case record.LabelTrans, record.LabelRTrans, record.LabelBTrans:
		return ErrUnexpectedPost
	}
	return nil
}

// insert adapts a record mapper result to an insert into c.
func insert[T any](c *collection.Collection[T]) func(T, error) error {
	return func(item T, err error) error {
		if err != nil {
			return err
		}
		return c.Insert(item)
	}
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
