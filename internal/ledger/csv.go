// Package ledger is the transaction analytics engine: it loads bank
// statement CSVs, buckets transactions into July–June financial years,
// summarizes arbitrary date ranges, predicts the next fixed payment,
// and derives keyword-filtered income/expense views.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// Parser converts a bank CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, LoadReport, error)
	Format() string
}

// LoadReport counts what happened during a load. Rows is the number of
// data rows seen; Dropped counts rows excluded for unparseable dates.
type LoadReport struct {
	Rows    int
	Dropped int
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StatementParser{})
	return r
}

// StatementParser parses Date,Credit,Debit,Balance,Description CSVs
// with DD/MM/YYYY dates. Columns are located by header name, so order
// does not matter. Rows with unparseable dates are dropped, not
// errored; debit values are normalized to their absolute value.
type StatementParser struct{}

var statementColumns = []string{"Date", "Credit", "Debit", "Balance", "Description"}

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a bank statement CSV and returns Transactions plus a
// LoadReport of dropped rows.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, LoadReport, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, LoadReport{}, nil
	}

	cols, err := locateColumns(records[0])
	if err != nil {
		return nil, LoadReport{}, err
	}

	var txns []model.Transaction
	report := LoadReport{Rows: len(records) - 1}
	for i, rec := range records[1:] {
		txn, ok, err := parseStatementRow(rec, cols)
		if err != nil {
			return nil, LoadReport{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		if !ok {
			report.Dropped++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, report, nil
}

func locateColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(statementColumns))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range statementColumns {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func parseStatementRow(rec []string, cols map[string]int) (model.Transaction, bool, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date, err := time.Parse(model.DisplayDateFormat, field("date"))
	if err != nil {
		return model.Transaction{}, false, nil
	}

	credit, err := parseCell(field("credit"))
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing credit %q: %w", field("credit"), err)
	}
	debit, err := parseCell(field("debit"))
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing debit %q: %w", field("debit"), err)
	}
	balance, err := parseCell(field("balance"))
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing balance %q: %w", field("balance"), err)
	}

	return model.Transaction{
		Date:        date,
		Credit:      credit,
		Debit:       debit.Abs(),
		Balance:     balance,
		Description: field("description"),
	}, true, nil
}

// parseCell treats an empty cell as zero.
func parseCell(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// LoadFile reads a statement CSV from disk with the default parser.
func LoadFile(path string) ([]model.Transaction, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	return DefaultRegistry().Get("statement").Parse(f)
}
