// Package statement extracts key monetary figures and dates from the
// text stream of an unstructured statement PDF. Extraction is
// best-effort pattern matching over the concatenated page text; there
// is no layout or table reconstruction.
package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

var (
	// ErrUnreadable indicates the document could not be opened or its
	// text stream could not be read.
	ErrUnreadable = errors.New("unreadable document")
	// ErrNoText indicates the document opened fine but has no text
	// layer to match against.
	ErrNoText = errors.New("document has no text")
)

// AmountError reports a matched numeric token that failed to parse as
// a decimal. It aborts the whole extraction: no partial summaries.
type AmountError struct {
	Token string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("malformed amount %q: %v", e.Token, e.Err)
}

func (e *AmountError) Unwrap() error { return e.Err }

const amountToken = `([\d,]+\.?\d*)`

var (
	moneyInRe  = regexp.MustCompile(`(?i)(?:money in|income|revenue|credits):?\s*\$?` + amountToken)
	moneyOutRe = regexp.MustCompile(`(?i)(?:money out|expenses|debits):?\s*\$?` + amountToken)
	receivedRe = regexp.MustCompile(`(?i)(?:what I received|received|proceeds):?\s*\$?` + amountToken)
	dateRe     = regexp.MustCompile(`\b(\d{1,2} (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4})\b`)
)

// matchedDateFormat is the layout of dates as they appear in statement
// text, e.g. "4 Mar 2024".
const matchedDateFormat = "2 Jan 2006"

// Summary holds every matched figure from one document. Slices may be
// empty; sums over empty slices are zero.
type Summary struct {
	MoneyIn     []decimal.Decimal
	MoneyOut    []decimal.Decimal
	NetReceived []decimal.Decimal
	Dates       []string // literal "D Mon YYYY" matches, in document order
}

// TotalIn sums all money-in matches.
func (s *Summary) TotalIn() decimal.Decimal { return sum(s.MoneyIn) }

// TotalOut sums all money-out matches.
func (s *Summary) TotalOut() decimal.Decimal { return sum(s.MoneyOut) }

// TotalReceived sums all net-received matches.
func (s *Summary) TotalReceived() decimal.Decimal { return sum(s.NetReceived) }

// Net returns TotalIn minus TotalOut.
func (s *Summary) Net() decimal.Decimal { return s.TotalIn().Sub(s.TotalOut()) }

// KeyDate returns the first matched date reformatted as DD/MM/YYYY.
// ok is false when the document had no recognizable date.
func (s *Summary) KeyDate() (string, bool) {
	if len(s.Dates) == 0 {
		return "", false
	}
	d, err := time.Parse(matchedDateFormat, s.Dates[0])
	if err != nil {
		return "", false
	}
	return d.Format(model.DisplayDateFormat), true
}

// DisplayDates returns every matched date zero-padded to DD/Mon/YYYY.
func (s *Summary) DisplayDates() []string {
	out := make([]string, 0, len(s.Dates))
	for _, d := range s.Dates {
		fields := strings.Fields(d)
		day, err := strconv.Atoi(fields[0])
		if err != nil {
			out = append(out, d)
			continue
		}
		out = append(out, fmt.Sprintf("%02d/%s/%s", day, fields[1], fields[2]))
	}
	return out
}

// Extract runs the field patterns over the document's full text and
// returns every match. No matches is not an error; a numeric token
// that fails to parse is (the whole extraction aborts).
func Extract(src TextSource) (*Summary, error) {
	text, err := src.PlainText()
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrNoText
	}

	s := &Summary{}
	if s.MoneyIn, err = parseAmounts(moneyInRe, text); err != nil {
		return nil, err
	}
	if s.MoneyOut, err = parseAmounts(moneyOutRe, text); err != nil {
		return nil, err
	}
	if s.NetReceived, err = parseAmounts(receivedRe, text); err != nil {
		return nil, err
	}

	for _, m := range dateRe.FindAllStringSubmatch(text, -1) {
		s.Dates = append(s.Dates, m[1])
	}
	return s, nil
}

func parseAmounts(re *regexp.Regexp, text string) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		token := m[1]
		d, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
		if err != nil {
			return nil, &AmountError{Token: token, Err: err}
		}
		amounts = append(amounts, d)
	}
	return amounts, nil
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
