package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		line      string
		wantLabel string
		want      []string
	}{
		{`#KONTO 1910 "Kassa och bank"`, "#KONTO", []string{"1910", "Kassa och bank"}},
		{`#TRANS 1910 {} -2000.00`, "#TRANS", []string{"1910", "", "-2000.00"}},
		{`#TRANS 1910 {  } -2000.00`, "#TRANS", []string{"1910", "", "-2000.00"}},
		{`#TRANS 1910 "" -2000.00`, "#TRANS", []string{"1910", "", "-2000.00"}},
		{`#TRANS 3010 {1 "100"} 500`, "#TRANS", []string{"3010", `1 "100"`, "500"}},
		{`#IB 0 1910 0`, "#IB", []string{"0", "1910", "0"}},
		{`#VER A   1    20250105`, "#VER", []string{"A", "1", "20250105"}},
		{`#SIETYP`, "#SIETYP", nil},
		{`   #FLAGGA 0`, "#FLAGGA", []string{"0"}},
		{`1 "100" 6 "P1"`, "", []string{"1", "100", "6", "P1"}},
		{`#X abc"def ghi"`, "#X", []string{`abc"def ghi"`}},
		{"", "", nil},
	}
	for _, tt := range tests {
		label, fields := Split(tt.line)
		assert.Equal(t, tt.wantLabel, label, "label of %q", tt.line)
		assert.Equal(t, tt.want, fields, "fields of %q", tt.line)
	}
}

func TestSplit_EscapedQuote(t *testing.T) {
	_, fields := Split(`#FNAMN "Bolaget \"Norr\" AB" 1`)
	assert.Equal(t, []string{`Bolaget "Norr" AB`, "1"}, fields)
}

func TestSplit_StripsControlBytes(t *testing.T) {
	_, fields := Split("#FNAMN \"Ab\tc\"\r")
	assert.Equal(t, []string{"Abc"}, fields)
}

func TestSplit_Unterminated(t *testing.T) {
	_, fields := Split(`#FNAMN "Open ended`)
	assert.Equal(t, []string{"Open ended"}, fields)

	_, fields = Split(`#TRANS 1910 {1 "2"`)
	assert.Equal(t, []string{"1910", `1 "2"`}, fields)
}

func TestSplit_EmptyFormsAreEquivalent(t *testing.T) {
	_, quoted := Split(`#X a "" b`)
	_, bracket := Split(`#X a {} b`)
	assert.Equal(t, quoted, bracket)
	assert.Equal(t, []string{"a", "", "b"}, quoted)
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"1", "100", "6", "P 1"}, Fields(`1 "100" 6 "P 1"`))
	assert.Empty(t, Fields(""))
}

func TestRoundTrip(t *testing.T) {
	sets := [][]string{
		{"1910", "Kassa"},
		{"plain", "with space", `has "quote"`, "", "0", "end"},
		{`"`, `""`, `a "b" c`},
		{"", "", "x"},
		{"tail space ", " lead space"},
	}
	for _, values := range sets {
		line := Format("#L", values...)
		label, fields := Split(line)
		assert.Equal(t, "#L", label)
		assert.Equal(t, values, fields, "line %s", line)
	}
}

func TestFormat_TrailingEmptyFields(t *testing.T) {
	assert.Equal(t, `#L "A"`, Format("#L", "A", "", ""))
	assert.Equal(t, `#L "A" "" "B"`, Format("#L", "A", "", "B"))
	assert.Equal(t, `#L`, Format("#L", ""))

	_, fields := Split(Format("#L", "A", "", ""))
	assert.Equal(t, []string{"A"}, fields)
}

func TestFormat_KeepsEscapedQuoteBeforeEmpty(t *testing.T) {
	assert.Equal(t, `#L "a\" ""`, Format("#L", `a\`, ""))
}

func TestFormatFields_Bare(t *testing.T) {
	line := FormatFields("#TRANS", []Field{Quoted("1910"), Bare("{}"), Quoted("-2000.00")})
	assert.Equal(t, `#TRANS "1910" {} "-2000.00"`, line)

	label, fields := Split(line)
	require.Equal(t, "#TRANS", label)
	assert.Equal(t, []string{"1910", "", "-2000.00"}, fields)
}

func TestFormat_Unlabeled(t *testing.T) {
	assert.Equal(t, `"1" "100"`, Format("", "1", "100"))
}

func TestSplit_BracketKeepsEscapes(t *testing.T) {
	_, fields := Split(`#TRANS 3010 {1 "a \"b\""} 5`)
	require.Len(t, fields, 3)
	assert.Equal(t, `1 "a \"b\""`, fields[1])
	assert.Equal(t, []string{"1", `a "b"`}, Fields(fields[1]))
}
