package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single parsed row of the source file.
type Transaction struct {
	// Line is the 1-based line of the row in the source file, 0 when built in memory.
	Line   int
	Date   time.Time
	Amount decimal.Decimal
}

// Row is a normalized transaction with the running total up to and including it.
type Row struct {
	Transaction
	RunningTotal decimal.Decimal
}

// AmountFloat returns the amount as a float64.
func (r Row) AmountFloat() float64 {
	return r.Amount.InexactFloat64()
}

// RunningTotalFloat returns the running total as a float64.
func (r Row) RunningTotalFloat() float64 {
	return r.RunningTotal.InexactFloat64()
}

// Table is the normalized transaction log. It is sorted ascending by date and
// is never modified after Normalize returns it, so it can be shared freely.
type Table struct {
	rows []Row
}

// Normalize stable-sorts the transactions by date and attaches the running
// total. The input slice is not modified.
func Normalize(transactions []Transaction) *Table {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]Row, len(sorted))
	running := decimal.Zero
	for i, tx := range sorted {
		running = running.Add(tx.Amount)
		rows[i] = Row{Transaction: tx, RunningTotal: running}
	}

	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row in date order.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns a copy of all rows in date order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Slice returns a copy of rows [offset, offset+limit), clamped to the table.
func (t *Table) Slice(offset, limit int) []Row {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.rows) || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > len(t.rows) {
		end = len(t.rows)
	}
	out := make([]Row, end-offset)
	copy(out, t.rows[offset:end])
	return out
}

// Between returns the half-open index range [lo, hi) of rows dated within
// from and to, both inclusive. A zero bound is open.
func (t *Table) Between(from, to time.Time) (lo, hi int) {
	n := len(t.rows)
	hi = n
	if !from.IsZero() {
		lo = sort.Search(n, func(i int) bool { return !t.rows[i].Date.Before(from) })
	}
	if !to.IsZero() {
		hi = sort.Search(n, func(i int) bool { return t.rows[i].Date.After(to) })
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Total returns the sum of all amounts, which is the last running total.
func (t *Table) Total() decimal.Decimal {
	if len(t.rows) == 0 {
		return decimal.Zero
	}
	return t.rows[len(t.rows)-1].RunningTotal
}

// FirstDate returns the earliest date, or the zero time for an empty table.
func (t *Table) FirstDate() time.Time {
	if len(t.rows) == 0 {
		return time.Time{}
	}
	return t.rows[0].Date
}

// LastDate returns the latest date, or the zero time for an empty table.
func (t *Table) LastDate() time.Time {
	if len(t.rows) == 0 {
		return time.Time{}
	}
	return t.rows[len(t.rows)-1].Date
}
