package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/textutil"
)

// Header is the CSV header of a chart file.
const Header = "account,name,type,unit,sru"

const (
	numFields = 5
	colNumber = 0
	colName   = 1
	colType   = 2
	colUnit   = 3
	colSRU    = 4
)

// Entry is one chart row: an account and its optional SRU code.
type Entry struct {
	model.Account
	SRU int // 0 when the account has no #SRU
}

// ReadAccounts reads a chart CSV.
func ReadAccounts(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteAccounts writes a chart CSV.
func WriteAccounts(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalAccount(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Entry to a CSV row.
func MarshalAccount(e Entry) []string {
	row := make([]string, numFields)
	row[colNumber] = e.Number
	row[colName] = e.Name
	row[colType] = string(e.Type)
	row[colUnit] = e.Unit
	if e.SRU != 0 {
		row[colSRU] = strconv.Itoa(e.SRU)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Entry.
func UnmarshalAccount(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colNumber] == "" {
		return Entry{}, fmt.Errorf("empty account number")
	}

	typ := model.AccountType(record[colType])
	if typ != "" && !typ.Valid() {
		return Entry{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	var sru int
	if record[colSRU] != "" {
		var err error
		sru, err = strconv.Atoi(record[colSRU])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing sru %q: %w", record[colSRU], err)
		}
	}

	return Entry{
		Account: model.Account{
			Number: record[colNumber],
			Name:   textutil.TrimCollapse(record[colName]),
			Type:   typ,
			Unit:   record[colUnit],
		},
		SRU: sru,
	}, nil
}
