// Package convlog keeps an append-only CSV record of validate and convert
// runs.
package convlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/sie/internal/journal"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp  time.Time
	Command    string
	Input      string
	Output     string
	Status     string
	Accounts   int
	Vouchers   int
	Lines      int
	Unbalanced int
	Error      string
}

// Header is the CSV header of the run log.
const Header = "timestamp,command,input,output,status,accounts,vouchers,lines,unbalanced,error"

const (
	numFields     = 10
	colTimestamp  = 0
	colCommand    = 1
	colInput      = 2
	colOutput     = 3
	colStatus     = 4
	colAccounts   = 5
	colVouchers   = 6
	colLines      = 7
	colUnbalanced = 8
	colError      = 9
)

// NewEntry records the outcome of one pipeline run.
func NewEntry(command, input, output string, report journal.Report, runErr error) Entry {
	e := Entry{
		Timestamp:  time.Now().UTC(),
		Command:    command,
		Input:      input,
		Output:     output,
		Status:     StatusOK,
		Accounts:   report.Accounts,
		Vouchers:   report.Vouchers,
		Lines:      report.Lines,
		Unbalanced: len(report.Unbalanced),
	}
	if runErr != nil {
		e.Status = StatusFailed
		e.Error = runErr.Error()
	}
	return e
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colInput] = e.Input
	row[colOutput] = e.Output
	row[colStatus] = e.Status
	row[colAccounts] = strconv.Itoa(e.Accounts)
	row[colVouchers] = strconv.Itoa(e.Vouchers)
	row[colLines] = strconv.Itoa(e.Lines)
	row[colUnbalanced] = strconv.Itoa(e.Unbalanced)
	row[colError] = e.Error
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colAccounts, colVouchers, colLines, colUnbalanced} {
		counts[i], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
	}

	return Entry{
		Timestamp:  ts,
		Command:    record[colCommand],
		Input:      record[colInput],
		Output:     record[colOutput],
		Status:     record[colStatus],
		Accounts:   counts[0],
		Vouchers:   counts[1],
		Lines:      counts[2],
		Unbalanced: counts[3],
		Error:      record[colError],
	}, nil
}

// Append writes entries to the log at path, creating the file and header
// if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the log at path. A missing file yields no
// entries.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
