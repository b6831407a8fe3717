package convlog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/journal"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Command:   "convert",
		Input:     "in.se",
		Output:    "out.se",
		Status:    StatusOK,
		Accounts:  3,
		Vouchers:  1,
		Lines:     3,
	}
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runs.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "convert", entries[0].Command)
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Command = "validate"
	e2.Output = ""
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "convert", entries[0].Command)
	assert.Equal(t, "validate", entries[1].Command)
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	original := testEntry()
	original.Status = StatusFailed
	original.Error = `line 3: #TRANS: unresolved account "9999"`
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, original, entries[0])
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "runs.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	row := MarshalEntry(testEntry())

	_, err := UnmarshalEntry(row[:4])
	assert.Error(t, err)

	bad := append([]string(nil), row...)
	bad[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(bad)
	assert.Error(t, err)

	bad = append([]string(nil), row...)
	bad[colLines] = "many"
	_, err = UnmarshalEntry(bad)
	assert.Error(t, err)
}

func TestNewEntry(t *testing.T) {
	report := journal.Report{
		Accounts:   4,
		Vouchers:   2,
		Lines:      6,
		Unbalanced: []*journal.UnbalancedError{{Series: "A", Number: "2", Sum: decimal.NewFromInt(5)}},
	}

	ok := NewEntry("validate", "in.se", "", report, nil)
	assert.Equal(t, StatusOK, ok.Status)
	assert.Equal(t, 1, ok.Unbalanced)
	assert.Empty(t, ok.Error)

	failed := NewEntry("convert", "in.se", "out.se", journal.Report{}, errors.New("boom"))
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "boom", failed.Error)
}
