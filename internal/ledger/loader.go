package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

const (
	// DateColumn is the header of the transaction date column.
	DateColumn = "date"
	// AmountColumn is the header of the signed amount column.
	AmountColumn = "abs amount"
)

var errEmptyValue = errors.New("empty value")

// Load reads and normalizes the CSV transaction log at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ledger: load %s: %w", path, err)
	}
	return table, nil
}

// Read parses a CSV stream whose first row holds headers. Extra columns are
// ignored. The first unparseable date or amount aborts the read.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := toIndex(headers)
	for _, name := range []string{DateColumn, AmountColumn} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	dateIdx, amountIdx := col[DateColumn], col[AmountColumn]

	var transactions []Transaction
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		dateStr := field(rec, dateIdx)
		date, err := ParseDate(dateStr)
		if err != nil {
			return nil, &ParseError{Line: line, Column: DateColumn, Value: dateStr, Err: err}
		}

		amountStr := field(rec, amountIdx)
		amount, err := ParseAmount(amountStr)
		if err != nil {
			return nil, &ParseError{Line: line, Column: AmountColumn, Value: amountStr, Err: err}
		}

		transactions = append(transactions, Transaction{Line: line, Date: date, Amount: amount})
	}

	return Normalize(transactions), nil
}

// ParseDate accepts any layout dateparse understands and returns the calendar
// date at UTC midnight. Ambiguous numeric dates are read month first.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyValue
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseAmount strips thousands separators and parses a signed decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" {
		return decimal.Zero, errEmptyValue
	}
	return decimal.NewFromString(cleaned)
}

func toIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return idx
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
