// Package record maps the ordered fields of each SIE post kind to ledger
// entities and back. Every mapper states which position holds which
// attribute; absent trailing fields take the zero value.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/scalar"
)

// Labels of the posts this package maps.
const (
	LabelFlag        = "#FLAGGA"
	LabelProgram     = "#PROGRAM"
	LabelFormat      = "#FORMAT"
	LabelGenerated   = "#GEN"
	LabelSieType     = "#SIETYP"
	LabelProsa       = "#PROSA"
	LabelCompanyType = "#FTYP"
	LabelCompanyID   = "#FNR"
	LabelOrgNumber   = "#ORGNR"
	LabelIndustry    = "#BKOD"
	LabelAddress     = "#ADRESS"
	LabelCompany     = "#FNAMN"
	LabelFiscalYear  = "#RAR"
	LabelTaxYear     = "#TAXAR"
	LabelBalanceDate = "#OMFATTN"
	LabelChartType   = "#KPTYP"
	LabelCurrency    = "#VALUTA"
	LabelAccount     = "#KONTO"
	LabelAccountType = "#KTYP"
	LabelUnit        = "#ENHET"
	LabelSRU         = "#SRU"
	LabelDimension   = "#DIM"
	LabelSubDim      = "#UNDERDIM"
	LabelObject      = "#OBJEKT"
	LabelOpening     = "#IB"
	LabelClosing     = "#UB"
	LabelResult      = "#RES"
	LabelObjOpening  = "#OIB"
	LabelObjClosing  = "#OUB"
	LabelPeriod      = "#PSALDO"
	LabelBudget      = "#PBUDGET"
	LabelVoucher     = "#VER"
	LabelTrans       = "#TRANS"
	LabelRTrans      = "#RTRANS"
	LabelBTrans      = "#BTRANS"
	LabelChecksum    = "#KSUMMA"
)

// ErrTooFewFields is returned when a post lacks a required field.
var ErrTooFewFields = errors.New("too few fields")

func need(label string, fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("%s: expected at least %d fields, got %d: %w", label, n, len(fields), ErrTooFewFields)
	}
	return nil
}

// at returns fields[i], or "" when the optional field is absent.
func at(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func name(label, attr string) string {
	return label + " " + attr
}

// ParseObjects reads the inside of an object list such as `1 "100" 6 "P1"`.
func ParseObjects(label, content string) ([]model.ObjectRef, error) {
	parts := post.Fields(content)
	if len(parts)%2 != 0 {
		return nil, &scalar.MalformedError{Field: name(label, "object list"), Kind: "object list", Value: content}
	}
	var refs []model.ObjectRef
	for i := 0; i < len(parts); i += 2 {
		dim, err := scalar.Int(name(label, "dimension"), parts[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, model.ObjectRef{Dimension: dim, Object: parts[i+1]})
	}
	return refs, nil
}

// parseObject reads an object list holding at most one reference.
func parseObject(label, content string) (model.ObjectRef, error) {
	refs, err := ParseObjects(label, content)
	if err != nil {
		return model.ObjectRef{}, err
	}
	if len(refs) > 1 {
		return model.ObjectRef{}, &scalar.MalformedError{Field: name(label, "object list"), Kind: "single object", Value: content}
	}
	if len(refs) == 0 {
		return model.ObjectRef{}, nil
	}
	return refs[0], nil
}

// FormatObjects writes an object list as a bare {dim "object" ...} field.
func FormatObjects(refs []model.ObjectRef) post.Field {
	fields := make([]post.Field, 0, 2*len(refs))
	for _, r := range refs {
		fields = append(fields, post.Bare(strconv.Itoa(r.Dimension)), post.Quoted(r.Object))
	}
	return post.Bare("{" + post.FormatFields("", fields) + "}")
}

func formatObject(ref model.ObjectRef) post.Field {
	if ref.IsZero() {
		return post.Bare("{}")
	}
	return FormatObjects([]model.ObjectRef{ref})
}

// NormalizeLabel upper-cases a label so lookups are case-insensitive.
func NormalizeLabel(label string) string {
	return strings.ToUpper(label)
}
