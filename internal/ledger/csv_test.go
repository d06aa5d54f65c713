package ledger

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/model"
)

func TestStatementParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/bank_statement.csv")
	require.NoError(t, err)

	p := &StatementParser{}
	txns, report, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	assert.Len(t, txns, 5)
	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, report.Rows-report.Dropped, len(txns))

	first := txns[0]
	assert.Equal(t, 2023, first.Date.Year())
	assert.Equal(t, 7, int(first.Date.Month()))
	assert.Equal(t, 1, first.Date.Day())
	assert.Equal(t, "1778.54", first.Debit.StringFixed(2))
	assert.Equal(t, "500.00", first.Balance.StringFixed(2))
	assert.Equal(t, "OSCAR PROPERTY rent", first.Description)
}

func TestStatementParser_DebitAbsoluteValue(t *testing.T) {
	csv := "Date,Credit,Debit,Balance,Description\n15/07/2023,,-1778.54,2000.00,rent\n"
	p := &StatementParser{}
	txns, _, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Debit.IsPositive())
	assert.Equal(t, "1778.54", txns[0].Debit.StringFixed(2))
}

func TestStatementParser_DatesRoundTrip(t *testing.T) {
	data, err := os.ReadFile("../../testdata/bank_statement.csv")
	require.NoError(t, err)

	p := &StatementParser{}
	txns, _, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for _, txn := range txns {
		formatted := txn.Date.Format(model.DisplayDateFormat)
		reparsed, err := time.Parse(model.DisplayDateFormat, formatted)
		require.NoError(t, err)
		assert.True(t, reparsed.Equal(txn.Date))
	}
}

func TestStatementParser_EmptyCellsAreZero(t *testing.T) {
	csv := "Date,Credit,Debit,Balance,Description\n01/07/2023,,,0.00,placeholder\n"
	p := &StatementParser{}
	txns, _, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Credit.IsZero())
	assert.True(t, txns[0].Debit.IsZero())
}

func TestStatementParser_ColumnsByName(t *testing.T) {
	csv := "Description,Balance,Debit,Credit,Date\nrent,500.00,1778.54,,01/07/2023\n"
	p := &StatementParser{}
	txns, _, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "rent", txns[0].Description)
	assert.Equal(t, "1778.54", txns[0].Debit.StringFixed(2))
}

func TestStatementParser_MissingColumn(t *testing.T) {
	csv := "Date,Credit,Debit,Description\n01/07/2023,,,x\n"
	p := &StatementParser{}
	_, _, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "Balance"`)
}

func TestStatementParser_BadAmount(t *testing.T) {
	csv := "Date,Credit,Debit,Balance,Description\n01/07/2023,NOTANUMBER,,0.00,x\n"
	p := &StatementParser{}
	_, _, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing credit")
}

func TestStatementParser_EmptyFile(t *testing.T) {
	p := &StatementParser{}
	txns, report, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
	assert.Equal(t, LoadReport{}, report)
}

func TestStatementParser_Format(t *testing.T) {
	p := &StatementParser{}
	assert.Equal(t, "statement", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&StatementParser{})
	assert.NotNil(t, r.Get("Statement"))
	assert.NotNil(t, r.Get("STATEMENT"))
}

func TestDefaultRegistry(t *testing.T) {
	assert.NotNil(t, DefaultRegistry().Get("statement"))
}

func TestLoadFile(t *testing.T) {
	txns, report, err := LoadFile("../../testdata/bank_statement.csv")
	require.NoError(t, err)
	assert.Len(t, txns, 5)
	assert.Equal(t, 1, report.Dropped)
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile("../../testdata/does_not_exist.csv")
	assert.Error(t, err)
}
